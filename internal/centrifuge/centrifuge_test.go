package centrifuge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpcyrd/sniffglue/internal/link"
)

// Scenario 1: Ethernet ARP reply.
func TestScenarioEthernetARPReply(t *testing.T) {
	src := [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	dest := [6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}
	srcIP := [4]byte{10, 0, 0, 1}
	destIP := [4]byte{10, 0, 0, 2}

	frame := append(ethHeader(dest, src, 0x0806), arpPacket(2, src, dest, srcIP, destIP)...)
	require.Len(t, frame, 42)

	raw := ParseEthernet(frame)
	ether, ok := raw.(RawEther)
	require.True(t, ok)

	arpEther, ok := ether.Inner.(EtherArp)
	require.True(t, ok)

	reply, ok := arpEther.Packet.(ARPReply)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", reply.Packet.SrcIP.String())

	assert.Equal(t, One, raw.NoiseLevel())
}

// Scenario 2: IPv4/UDP/DNS query for example.com A.
func TestScenarioDNSQuery(t *testing.T) {
	query := dnsQuery(1234, "example.com", uint16(DNSTypeA))
	udp := append(udpHeader(40000, 53, len(query)), query...)
	ip := append(ipv4Header(17 /* UDP */, [4]byte{192, 168, 0, 1}, [4]byte{8, 8, 8, 8}, len(udp)), udp...)

	raw := Parse(link.Ethernet, append(ethHeader([6]byte{1}, [6]byte{2}, 0x0800), ip...))

	ether := raw.(RawEther)
	ipLayer := ether.Inner.(EtherIPv4)
	udpLayer := ipLayer.Inner.(IPv4UDP)
	dnsLayer := udpLayer.Inner.(UDPDNS)
	req := dnsLayer.Message.(DNSRequest)

	require.Len(t, req.Questions, 1)
	assert.Equal(t, "example.com", req.Questions[0].Name)
	assert.Equal(t, DNSTypeA, req.Questions[0].Type)
	assert.Equal(t, Zero, raw.NoiseLevel())
}

// Scenario 3: IPv4/TCP/TLS ClientHello with SNI example.org.
func TestScenarioTLSClientHelloSNI(t *testing.T) {
	record := tlsClientHelloSNI("example.org")
	tcp := append(tcpHeader(55000, 443, 0), record...)
	ip := append(ipv4Header(6 /* TCP */, [4]byte{10, 0, 0, 5}, [4]byte{93, 184, 216, 34}, len(tcp)), tcp...)

	raw := Parse(link.Ethernet, append(ethHeader([6]byte{1}, [6]byte{2}, 0x0800), ip...))

	ether := raw.(RawEther)
	ipLayer := ether.Inner.(EtherIPv4)
	tcpLayer := ipLayer.Inner.(IPv4TCP)
	tlsLayer := tcpLayer.Inner.(TCPTLS)
	hello := tlsLayer.Message.(TLSClientHello)

	assert.Equal(t, "tls1.2", hello.Version)
	require.NotNil(t, hello.Hostname)
	assert.Equal(t, "example.org", *hello.Hostname)
	assert.Equal(t, Zero, raw.NoiseLevel())
}

// Scenario 4: IPv4/TCP/HTTP request.
func TestScenarioHTTPRequest(t *testing.T) {
	payload := []byte("GET / HTTP/1.1\r\nHost: example.com\r\nUser-Agent: probe\r\n\r\n")
	tcp := append(tcpHeader(51000, 80, 0x18 /* ACK|PSH */), payload...)
	ip := append(ipv4Header(6, [4]byte{10, 0, 0, 5}, [4]byte{93, 184, 216, 34}, len(tcp)), tcp...)

	raw := Parse(link.Ethernet, append(ethHeader([6]byte{1}, [6]byte{2}, 0x0800), ip...))

	ether := raw.(RawEther)
	ipLayer := ether.Inner.(EtherIPv4)
	tcpLayer := ipLayer.Inner.(IPv4TCP)
	httpLayer := tcpLayer.Inner.(TCPHTTP)
	req := httpLayer.Message.(HTTPRequest)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/", req.URI)
	assert.Equal(t, 1, req.VersionMinor)
	require.NotNil(t, req.Host)
	assert.Equal(t, "example.com", *req.Host)
	require.NotNil(t, req.Agent)
	assert.Equal(t, "probe", *req.Agent)
	assert.Equal(t, Zero, raw.NoiseLevel())
}

// Scenario 5: IPv4/UDP opaque binary with a NUL byte.
func TestScenarioUDPBinary(t *testing.T) {
	payload := make([]byte, 200)
	for i := range payload {
		payload[i] = byte(i)
	}
	payload[0] = 0x00 // guarantee a NUL byte

	udp := append(udpHeader(11111, 22222, len(payload)), payload...)
	ip := append(ipv4Header(17, [4]byte{10, 0, 0, 5}, [4]byte{10, 0, 0, 6}, len(udp)), udp...)

	raw := Parse(link.Ethernet, append(ethHeader([6]byte{1}, [6]byte{2}, 0x0800), ip...))

	ether := raw.(RawEther)
	ipLayer := ether.Inner.(EtherIPv4)
	udpLayer := ipLayer.Inner.(IPv4UDP)
	_, ok := udpLayer.Inner.(UDPBinary)
	require.True(t, ok)

	assert.Equal(t, AlmostMaximum, raw.NoiseLevel())
}

// Scenario 6: Linux SLL + IPv4 + TCP segment with only ACK|PSH flags and a
// non-UTF-8 42-byte body.
func TestScenarioSLLTCPBinary(t *testing.T) {
	body := make([]byte, 42)
	for i := range body {
		body[i] = 0x80 // invalid UTF-8 continuation byte on its own
	}

	tcp := append(tcpHeader(4000, 5000, 0x18 /* ACK|PSH, no control flags */), body...)
	ip := append(ipv4Header(6, [4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2}, len(tcp)), tcp...)

	sll := make([]byte, 16)
	sll[14], sll[15] = 0x08, 0x00 // protocol = IPv4
	frame := append(sll, ip...)

	raw := Parse(link.Sll, frame)

	sllRaw, ok := raw.(RawSll)
	require.True(t, ok)

	ipLayer := sllRaw.Inner.(EtherIPv4)
	tcpLayer := ipLayer.Inner.(IPv4TCP)
	_, ok = tcpLayer.Inner.(TCPBinary)
	require.True(t, ok)
	assert.True(t, tcpLayer.Header.FlagACK)
	assert.True(t, tcpLayer.Header.FlagPSH)
	assert.False(t, tcpLayer.Header.IsControl())

	assert.Equal(t, AlmostMaximum, raw.NoiseLevel())
}
