package centrifuge

import (
	"math/big"
	"net"

	"github.com/kpcyrd/sniffglue/internal/wire"
)

// Raw is the root of every decoded packet: the link-layer framing plus
// whatever the centrifuge managed to recognize underneath it. Every link
// type this system captures has a case here, down to a raw Unknown so that
// Raw.NoiseLevel never has to fail.
type Raw interface {
	NoiseLevel() NoiseLevel
	isRaw()
}

// RawEther is an Ethernet II frame.
type RawEther struct {
	Frame wire.EthernetFrame
	Inner Ether
}

func (RawEther) isRaw()                 {}
func (r RawEther) NoiseLevel() NoiseLevel { return r.Inner.NoiseLevel() }
func (r RawEther) MarshalJSON() ([]byte, error) {
	return tagged("Ether", map[string]interface{}{
		"dest_mac": r.Frame.DestMAC.String(),
		"src_mac":  r.Frame.SrcMAC.String(),
		"inner":    r.Inner,
	})
}

// RawTun is a point-to-point tunnel frame (no link-layer addressing) that
// goes straight to IPv4, as produced by tun/tap interfaces.
type RawTun struct {
	Inner Ether
}

func (RawTun) isRaw()                   {}
func (r RawTun) NoiseLevel() NoiseLevel { return r.Inner.NoiseLevel() }
func (r RawTun) MarshalJSON() ([]byte, error) {
	return tagged("Tun", r.Inner)
}

// RawSll is a Linux "cooked" capture frame.
type RawSll struct {
	Inner Ether
}

func (RawSll) isRaw()                   {}
func (r RawSll) NoiseLevel() NoiseLevel { return r.Inner.NoiseLevel() }
func (r RawSll) MarshalJSON() ([]byte, error) {
	return tagged("Sll", r.Inner)
}

// RawUnknown is any link layer this system doesn't decode at all (e.g. an
// unrecognized DLT, or a link-layer header that didn't fit).
type RawUnknown struct {
	Data []byte
}

func (RawUnknown) isRaw()            {}
func (RawUnknown) NoiseLevel() NoiseLevel { return Maximum }
func (r RawUnknown) MarshalJSON() ([]byte, error) {
	return tagged("Unknown", r.Data)
}

// Ether is the network-layer payload carried by a link-layer frame.
type Ether interface {
	NoiseLevel() NoiseLevel
	isEther()
}

// EtherArp is an ARP request or reply.
type EtherArp struct {
	Packet ARP
}

func (EtherArp) isEther()                 {}
func (EtherArp) NoiseLevel() NoiseLevel   { return One }
func (e EtherArp) MarshalJSON() ([]byte, error) {
	return tagged("Arp", e.Packet)
}

// EtherIPv4 is an IPv4 datagram.
type EtherIPv4 struct {
	Header wire.IPv4Header
	Inner  IPv4
}

func (EtherIPv4) isEther()               {}
func (e EtherIPv4) NoiseLevel() NoiseLevel { return e.Inner.NoiseLevel() }
func (e EtherIPv4) MarshalJSON() ([]byte, error) {
	return tagged("IPv4", map[string]interface{}{
		"source_addr": e.Header.SourceAddr(),
		"dest_addr":   e.Header.DestAddrStr(),
		"inner":       e.Inner,
	})
}

// EtherIPv6 is an IPv6 datagram.
type EtherIPv6 struct {
	Header wire.IPv6Header
	Inner  IPv6
}

func (EtherIPv6) isEther()               {}
func (e EtherIPv6) NoiseLevel() NoiseLevel { return e.Inner.NoiseLevel() }
func (e EtherIPv6) MarshalJSON() ([]byte, error) {
	return tagged("IPv6", map[string]interface{}{
		"source_addr": e.Header.SourceAddr(),
		"dest_addr":   e.Header.DestAddrStr(),
		"inner":       e.Inner,
	})
}

// EtherCjdns is a cjdns LAN beacon.
type EtherCjdns struct {
	Beacon wire.CjdnsBeacon
}

func (EtherCjdns) isEther()               {}
func (EtherCjdns) NoiseLevel() NoiseLevel { return Two }
func (e EtherCjdns) MarshalJSON() ([]byte, error) {
	return tagged("Cjdns", map[string]interface{}{
		"version": e.Beacon.Version,
	})
}

// EtherUnknown is an EtherType this system doesn't decode further.
type EtherUnknown struct {
	Data []byte
}

func (EtherUnknown) isEther()            {}
func (EtherUnknown) NoiseLevel() NoiseLevel { return Maximum }
func (e EtherUnknown) MarshalJSON() ([]byte, error) {
	return tagged("Unknown", e.Data)
}

// ARP carries the decoded ARP packet. Request vs reply is kept for the
// renderer but doesn't affect NoiseLevel: both sit at EtherArp's One.
type ARP interface {
	isARP()
}

type ARPRequest struct{ Packet wire.ARPPacket }
type ARPReply struct{ Packet wire.ARPPacket }

func (ARPRequest) isARP() {}
func (ARPReply) isARP()   {}

func (a ARPRequest) MarshalJSON() ([]byte, error) { return tagged("Request", arpFields(a.Packet)) }
func (a ARPReply) MarshalJSON() ([]byte, error)   { return tagged("Reply", arpFields(a.Packet)) }

func arpFields(p wire.ARPPacket) map[string]interface{} {
	return map[string]interface{}{
		"src_mac":  p.SrcMAC.String(),
		"src_addr": p.SrcIP.String(),
		"dest_mac": p.DestMAC.String(),
		"dest_addr": p.DestIP.String(),
	}
}

// IPv4 is the transport-layer payload of an IPv4 datagram.
type IPv4 interface {
	NoiseLevel() NoiseLevel
	isIPv4()
}

type IPv4TCP struct {
	Header wire.TCPHeader
	Inner  TCP
}

func (IPv4TCP) isIPv4()                 {}
func (i IPv4TCP) NoiseLevel() NoiseLevel { return noiseLevelTCP(i.Header, i.Inner) }
func (i IPv4TCP) MarshalJSON() ([]byte, error) { return tagged("TCP", tcpFields(i.Header, i.Inner)) }

type IPv4UDP struct {
	Header wire.UDPHeader
	Inner  UDP
}

func (IPv4UDP) isIPv4()                 {}
func (i IPv4UDP) NoiseLevel() NoiseLevel { return i.Inner.NoiseLevel() }
func (i IPv4UDP) MarshalJSON() ([]byte, error) { return tagged("UDP", udpFields(i.Header, i.Inner)) }

type IPv4ICMP struct {
	Header wire.ICMPHeader
}

func (IPv4ICMP) isIPv4()                 {}
func (i IPv4ICMP) NoiseLevel() NoiseLevel { return noiseLevelICMP(i.Header) }
func (i IPv4ICMP) MarshalJSON() ([]byte, error) {
	return tagged("ICMP", map[string]interface{}{"type": i.Header.Type, "code": i.Header.Code})
}

type IPv4Unknown struct {
	Protocol uint8
	Data     []byte
}

func (IPv4Unknown) isIPv4()                 {}
func (IPv4Unknown) NoiseLevel() NoiseLevel   { return Maximum }
func (i IPv4Unknown) MarshalJSON() ([]byte, error) {
	return tagged("Unknown", map[string]interface{}{"protocol": i.Protocol, "data": i.Data})
}

// IPv6 is the transport-layer payload of an IPv6 datagram. There is
// deliberately no IPv6 ICMP variant (ICMPv6 is left to *Unknown — see
// DESIGN.md's Open Question on extension-header handling).
type IPv6 interface {
	NoiseLevel() NoiseLevel
	isIPv6()
}

type IPv6TCP struct {
	Header wire.TCPHeader
	Inner  TCP
}

func (IPv6TCP) isIPv6()                 {}
func (i IPv6TCP) NoiseLevel() NoiseLevel { return noiseLevelTCP(i.Header, i.Inner) }
func (i IPv6TCP) MarshalJSON() ([]byte, error) { return tagged("TCP", tcpFields(i.Header, i.Inner)) }

type IPv6UDP struct {
	Header wire.UDPHeader
	Inner  UDP
}

func (IPv6UDP) isIPv6()                 {}
func (i IPv6UDP) NoiseLevel() NoiseLevel { return i.Inner.NoiseLevel() }
func (i IPv6UDP) MarshalJSON() ([]byte, error) { return tagged("UDP", udpFields(i.Header, i.Inner)) }

type IPv6Unknown struct {
	NextHeader uint8
	Data       []byte
}

func (IPv6Unknown) isIPv6()                 {}
func (IPv6Unknown) NoiseLevel() NoiseLevel   { return Maximum }
func (i IPv6Unknown) MarshalJSON() ([]byte, error) {
	return tagged("Unknown", map[string]interface{}{"next_header": i.NextHeader, "data": i.Data})
}

// TCP is the classified TCP payload. Its noise level depends on the TCP
// header's control flags, so it's computed by noiseLevelTCP rather than a
// method on TCP itself.
type TCP interface {
	isTCP()
}

type TCPEmpty struct{}
type TCPBinary struct{ Data []byte }
type TCPText struct{ Text string }
type TCPHTTP struct{ Message HTTP }
type TCPTLS struct{ Message TLS }

func (TCPEmpty) isTCP()  {}
func (TCPBinary) isTCP() {}
func (TCPText) isTCP()   {}
func (TCPHTTP) isTCP()   {}
func (TCPTLS) isTCP()    {}

func tcpFields(hdr wire.TCPHeader, inner TCP) map[string]interface{} {
	return map[string]interface{}{
		"source_port": hdr.SrcPort,
		"dest_port":   hdr.DestPort,
		"inner":       tcpInnerJSON(inner),
	}
}

func tcpInnerJSON(t TCP) interface{} {
	switch v := t.(type) {
	case TCPEmpty:
		return map[string]interface{}{"Empty": nil}
	case TCPBinary:
		return map[string]interface{}{"Binary": v.Data}
	case TCPText:
		return map[string]interface{}{"Text": v.Text}
	case TCPHTTP:
		return map[string]interface{}{"HTTP": v.Message}
	case TCPTLS:
		return map[string]interface{}{"TLS": v.Message}
	default:
		return map[string]interface{}{"Unknown": nil}
	}
}

// noiseLevelTCP implements the TCP control-vs-data noise split described in
// SPEC_FULL.md §3.
func noiseLevelTCP(hdr wire.TCPHeader, inner TCP) NoiseLevel {
	control := hdr.IsControl()

	switch v := inner.(type) {
	case TCPTLS:
		return Zero
	case TCPHTTP:
		return Zero
	case TCPText:
		if control {
			return Two
		}
		if len(v.Text) <= 8 {
			return AlmostMaximum
		}
		return Zero
	case TCPBinary:
		if control {
			return Two
		}
		return AlmostMaximum
	case TCPEmpty:
		if control {
			return Two
		}
		return AlmostMaximum
	default:
		return Maximum
	}
}

// UDP is the classified UDP payload.
type UDP interface {
	NoiseLevel() NoiseLevel
	isUDP()
}

type UDPBinary struct{ Data []byte }
type UDPDHCP struct{ Message DHCP }
type UDPDNS struct{ Message DNS }
type UDPSSDP struct{ Message SSDP }
type UDPDropbox struct{ Beacon DropboxBeacon }
type UDPText struct{ Text string }

func (UDPBinary) isUDP()  {}
func (UDPDHCP) isUDP()    {}
func (UDPDNS) isUDP()     {}
func (UDPSSDP) isUDP()    {}
func (UDPDropbox) isUDP() {}
func (UDPText) isUDP()    {}

func (UDPBinary) NoiseLevel() NoiseLevel   { return AlmostMaximum }
func (UDPDHCP) NoiseLevel() NoiseLevel     { return Zero }
func (UDPDNS) NoiseLevel() NoiseLevel      { return Zero }
func (UDPSSDP) NoiseLevel() NoiseLevel     { return Two }
func (UDPDropbox) NoiseLevel() NoiseLevel  { return Two }
func (UDPText) NoiseLevel() NoiseLevel     { return Two }

func udpFields(hdr wire.UDPHeader, inner UDP) map[string]interface{} {
	return map[string]interface{}{
		"source_port": hdr.SrcPort,
		"dest_port":   hdr.DestPort,
		"inner":       udpInnerJSON(inner),
	}
}

func udpInnerJSON(u UDP) interface{} {
	switch v := u.(type) {
	case UDPBinary:
		return map[string]interface{}{"Binary": v.Data}
	case UDPDHCP:
		return map[string]interface{}{"DHCP": v.Message}
	case UDPDNS:
		return map[string]interface{}{"DNS": v.Message}
	case UDPSSDP:
		return map[string]interface{}{"SSDP": v.Message}
	case UDPDropbox:
		return map[string]interface{}{"Dropbox": v.Beacon}
	case UDPText:
		return map[string]interface{}{"Text": v.Text}
	default:
		return map[string]interface{}{"Unknown": nil}
	}
}

// noiseLevelICMP implements the ICMP echo-vs-other noise split.
func noiseLevelICMP(hdr wire.ICMPHeader) NoiseLevel {
	if hdr.IsEcho() {
		return One
	}
	return Two
}

// DHCP is the decoded BOOTP/DHCP message, keyed by its message-type option.
type DHCP interface {
	isDHCP()
}

// DHCPPacket holds the small set of fields this system retains: ciaddr,
// yiaddr, siaddr and chaddr from the BOOTP fixed header, and the hostname,
// requested IP, router list, and DNS server list options. Everything else
// in the 240+ byte message is discarded.
type DHCPPacket struct {
	CIAddr             net.IP
	YIAddr             net.IP
	SIAddr             net.IP
	CHAddr             []byte
	Hostname           *string
	RequestedIPAddress *net.IP
	Router             []net.IP
	DomainNameServer   []net.IP
}

type DHCPDiscover struct{ Packet DHCPPacket }
type DHCPOffer struct{ Packet DHCPPacket }
type DHCPRequest struct{ Packet DHCPPacket }
type DHCPDecline struct{ Packet DHCPPacket }
type DHCPAck struct{ Packet DHCPPacket }
type DHCPNak struct{ Packet DHCPPacket }
type DHCPRelease struct{ Packet DHCPPacket }
type DHCPInform struct{ Packet DHCPPacket }
type DHCPUnknown struct{ Packet DHCPPacket }

func (DHCPDiscover) isDHCP() {}
func (DHCPOffer) isDHCP()    {}
func (DHCPRequest) isDHCP()  {}
func (DHCPDecline) isDHCP()  {}
func (DHCPAck) isDHCP()      {}
func (DHCPNak) isDHCP()      {}
func (DHCPRelease) isDHCP()  {}
func (DHCPInform) isDHCP()   {}
func (DHCPUnknown) isDHCP()  {}

// DNS is a DNS message, split into requests (questions only) and responses
// (answers only), matching the original's "we don't correlate, we just
// show what's in the message" approach.
type DNS interface {
	isDNS()
}

type DNSRequest struct {
	Questions []DNSQuestion
}

type DNSResponse struct {
	Answers []DNSAnswer
}

func (DNSRequest) isDNS()  {}
func (DNSResponse) isDNS() {}

// DNSQueryType is the DNS resource record type code (RFC 1035 §3.2.2 etc).
type DNSQueryType uint16

const (
	DNSTypeA     DNSQueryType = 1
	DNSTypeNS    DNSQueryType = 2
	DNSTypeCNAME DNSQueryType = 5
	DNSTypeSOA   DNSQueryType = 6
	DNSTypePTR   DNSQueryType = 12
	DNSTypeMX    DNSQueryType = 15
	DNSTypeTXT   DNSQueryType = 16
	DNSTypeAAAA  DNSQueryType = 28
	DNSTypeSRV   DNSQueryType = 33
)

type DNSQuestion struct {
	Name string
	Type DNSQueryType
}

type DNSAnswer struct {
	Name   string
	Record DNSRecord
}

// DNSRecord is the decoded RDATA of a DNS answer.
type DNSRecord interface {
	isDNSRecord()
}

type DNSRecordA struct{ Addr net.IP }
type DNSRecordAAAA struct{ Addr net.IP }
type DNSRecordCNAME struct{ Name string }
type DNSRecordNS struct{ Name string }
type DNSRecordPTR struct{ Name string }
type DNSRecordTXT struct{ Text string }
type DNSRecordUnknown struct {
	Type DNSQueryType
	Data []byte
}

func (DNSRecordA) isDNSRecord()       {}
func (DNSRecordAAAA) isDNSRecord()    {}
func (DNSRecordCNAME) isDNSRecord()   {}
func (DNSRecordNS) isDNSRecord()      {}
func (DNSRecordPTR) isDNSRecord()     {}
func (DNSRecordTXT) isDNSRecord()     {}
func (DNSRecordUnknown) isDNSRecord() {}

// TLS is a ClientHello or ServerHello record. Anything past the handshake
// (application data, alerts, change-cipher-spec) isn't decoded — it falls
// back to TCPBinary/TCPText per the content check, matching the original's
// "only the first recognized application-layer record" Non-goal.
type TLS interface {
	isTLS()
}

type TLSClientHello struct {
	Version   string
	SessionID string
	Hostname  *string
}

type TLSServerHello struct {
	Version   string
	SessionID string
	Cipher    string
}

func (TLSClientHello) isTLS() {}
func (TLSServerHello) isTLS() {}

// HTTP is a request or response message.
type HTTP interface {
	isHTTP()
}

type HeaderField struct {
	Name  string
	Value string
}

type HTTPRequest struct {
	Method       string
	URI          string
	VersionMinor int
	Headers      []HeaderField
	Host         *string
	Agent        *string
	Referer      *string
	Auth         *string
	Cookies      []string
	Body         []byte
}

type HTTPResponse struct {
	VersionMinor int
	Code         int
	Reason       string
	Headers      []HeaderField
	Body         []byte
}

func (HTTPRequest) isHTTP()  {}
func (HTTPResponse) isHTTP() {}

// SSDP is a Simple Service Discovery Protocol datagram, matched only by its
// leading verb line; the rest of the message is kept as raw text.
type SSDP interface {
	isSSDP()
}

type SSDPDiscover struct{ Headers string }
type SSDPNotify struct{ Headers string }
type SSDPBTSearch struct{ Headers string }

func (SSDPDiscover) isSSDP()  {}
func (SSDPNotify) isSSDP()    {}
func (SSDPBTSearch) isSSDP()  {}

// DropboxBeacon is the Dropbox LAN sync discovery beacon, a line-delimited
// JSON object sent to UDP port 17500. HostInt is a 128-bit value, wider than
// any Go machine int, so it's carried as a big.Int.
type DropboxBeacon struct {
	Version     []byte
	HostInt     *big.Int
	Namespaces  []uint64
	DisplayName string
	Port        uint16
}
