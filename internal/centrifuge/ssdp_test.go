package centrifuge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpcyrd/sniffglue/internal/link"
)

// TestParseSSDPDiscover decodes an M-SEARCH discovery request and checks
// that the bytes after the matched request line are kept verbatim.
func TestParseSSDPDiscover(t *testing.T) {
	msg, err := parseSSDP("M-SEARCH * HTTP/1.1\r\nST: ssdp:all\r\n\r\n")
	require.NoError(t, err)

	discover, ok := msg.(SSDPDiscover)
	require.True(t, ok)
	assert.Equal(t, "ST: ssdp:all\r\n\r\n", discover.Headers)
}

// TestParseSSDPDiscoverHTTP10 covers the bare HTTP/1.0 discovery line,
// which the wire format never follows with headers.
func TestParseSSDPDiscoverHTTP10(t *testing.T) {
	msg, err := parseSSDP("M-SEARCH * HTTP/1.0")
	require.NoError(t, err)

	discover, ok := msg.(SSDPDiscover)
	require.True(t, ok)
	assert.Equal(t, "", discover.Headers)
}

func TestParseSSDPNotify(t *testing.T) {
	msg, err := parseSSDP("NOTIFY * HTTP/1.1\r\nNTS: ssdp:alive\r\n\r\n")
	require.NoError(t, err)

	notify, ok := msg.(SSDPNotify)
	require.True(t, ok)
	assert.Equal(t, "NTS: ssdp:alive\r\n\r\n", notify.Headers)
}

func TestParseSSDPBTSearch(t *testing.T) {
	msg, err := parseSSDP("BT-SEARCH * HTTP/1.1\r\nHost: 239.255.255.250:6771\r\n\r\n")
	require.NoError(t, err)

	search, ok := msg.(SSDPBTSearch)
	require.True(t, ok)
	assert.Equal(t, "Host: 239.255.255.250:6771\r\n\r\n", search.Headers)
}

// TestParseSSDPRejectsPartialVerbMatch guards against the bug where a line
// that merely starts with a recognized verb word ("NOTIFYfoo"), without the
// exact "* HTTP/1.x\r\n" suffix, was misclassified as SSDP instead of
// falling through to plain text.
func TestParseSSDPRejectsPartialVerbMatch(t *testing.T) {
	cases := []string{
		"NOTIFYfoo bar baz",
		"M-SEARCHsomething else",
		"BT-SEARCH nope",
		"NOTIFY * HTTP/1.0\r\n",
	}
	for _, text := range cases {
		_, err := parseSSDP(text)
		assert.Error(t, err, "expected %q to be rejected", text)
	}
}

// Scenario: IPv4/UDP SSDP M-SEARCH discovery end to end through Parse.
func TestScenarioUDPSSDPDiscover(t *testing.T) {
	payload := []byte("M-SEARCH * HTTP/1.1\r\nST: ssdp:all\r\n\r\n")
	udp := append(udpHeader(40000, 1900, len(payload)), payload...)
	ip := append(ipv4Header(17 /* UDP */, [4]byte{10, 0, 0, 3}, [4]byte{239, 255, 255, 250}, len(udp)), udp...)

	raw := Parse(link.Ethernet, append(ethHeader([6]byte{1}, [6]byte{2}, 0x0800), ip...))

	ether := raw.(RawEther)
	ipLayer := ether.Inner.(EtherIPv4)
	udpLayer := ipLayer.Inner.(IPv4UDP)
	ssdp, ok := udpLayer.Inner.(UDPSSDP)
	require.True(t, ok, "expected UDPSSDP, got %T", udpLayer.Inner)
	_, ok = ssdp.Message.(SSDPDiscover)
	assert.True(t, ok)
	assert.Equal(t, Two, raw.NoiseLevel())
}

// A UDP text payload whose first line merely starts with "NOTIFY" but isn't
// the exact SSDP request line must be classified as plain text, not SSDP.
func TestScenarioUDPTextNotSSDP(t *testing.T) {
	payload := []byte("NOTIFYfoo this is not ssdp")
	udp := append(udpHeader(40000, 1900, len(payload)), payload...)
	ip := append(ipv4Header(17, [4]byte{10, 0, 0, 3}, [4]byte{10, 0, 0, 4}, len(udp)), udp...)

	raw := Parse(link.Ethernet, append(ethHeader([6]byte{1}, [6]byte{2}, 0x0800), ip...))

	ether := raw.(RawEther)
	ipLayer := ether.Inner.(EtherIPv4)
	udpLayer := ipLayer.Inner.(IPv4UDP)
	_, isText := udpLayer.Inner.(UDPText)
	assert.True(t, isText, "expected UDPText, got %T", udpLayer.Inner)
}
