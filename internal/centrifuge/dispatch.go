package centrifuge

import (
	"github.com/kpcyrd/sniffglue/internal/link"
	"github.com/kpcyrd/sniffglue/internal/wire"
)

// Parse decodes a single captured packet into a Raw tree. It never returns
// an error and never panics: every layer that fails to parse, or names a
// protocol this system doesn't decode, becomes that layer's Unknown variant
// instead. This is the system's totality guarantee.
func Parse(dl link.DataLink, data []byte) Raw {
	switch dl {
	case link.Ethernet:
		return ParseEthernet(data)
	case link.Tun:
		return RawTun{Inner: parseEtherPayload(wire.EtherTypeIPv4, data)}
	case link.Sll:
		return parseSll(data)
	default:
		return RawUnknown{Data: data}
	}
}

// ParseEthernet decodes an Ethernet II frame and everything the centrifuge
// recognizes underneath it.
func ParseEthernet(data []byte) Raw {
	frame, payload, err := wire.ParseEthernetFrame(data)
	if err != nil {
		return RawUnknown{Data: data}
	}

	return RawEther{
		Frame: frame,
		Inner: parseEtherPayload(frame.EtherType, payload),
	}
}

func parseSll(data []byte) Raw {
	hdr, payload, err := wire.ParseSLLHeader(data)
	if err != nil {
		return RawUnknown{Data: data}
	}

	return RawSll{Inner: parseEtherPayload(hdr.Protocol, payload)}
}

// parseEtherPayload dispatches on an EtherType-like 16-bit protocol field,
// shared by Ethernet, Sll (whose Protocol field carries the same values),
// and Tun (which is always assumed to be IPv4, matching the original).
func parseEtherPayload(etherType uint16, payload []byte) Ether {
	switch etherType {
	case wire.EtherTypeARP:
		return parseArp(payload)
	case wire.EtherTypeIPv4:
		return parseIPv4(payload)
	case wire.EtherTypeIPv6:
		return parseIPv6(payload)
	case wire.EtherTypeCjdns:
		return parseCjdns(payload)
	default:
		return EtherUnknown{Data: payload}
	}
}

func parseArp(data []byte) Ether {
	packet, err := wire.ParseARPPacket(data)
	if err != nil {
		return EtherUnknown{Data: data}
	}

	var arp ARP
	switch packet.Operation {
	case wire.ARPRequest:
		arp = ARPRequest{Packet: packet}
	case wire.ARPReply:
		arp = ARPReply{Packet: packet}
	default:
		return EtherUnknown{Data: data}
	}

	return EtherArp{Packet: arp}
}

func parseCjdns(data []byte) Ether {
	beacon, err := wire.ParseCjdnsBeacon(data)
	if err != nil {
		return EtherUnknown{Data: data}
	}
	return EtherCjdns{Beacon: beacon}
}

func parseIPv4(data []byte) Ether {
	hdr, payload, err := wire.ParseIPv4Header(data)
	if err != nil {
		return EtherUnknown{Data: data}
	}

	return EtherIPv4{
		Header: hdr,
		Inner:  parseIPv4Transport(hdr.Protocol, payload),
	}
}

func parseIPv4Transport(protocol uint8, payload []byte) IPv4 {
	switch protocol {
	case wire.ProtoTCP:
		return parseTCPv4(payload)
	case wire.ProtoUDP:
		return parseUDPv4(payload)
	case wire.ProtoICMP:
		hdr, _, err := wire.ParseICMPHeader(payload)
		if err != nil {
			return IPv4Unknown{Protocol: protocol, Data: payload}
		}
		return IPv4ICMP{Header: hdr}
	default:
		return IPv4Unknown{Protocol: protocol, Data: payload}
	}
}

func parseIPv6(data []byte) Ether {
	hdr, payload, err := wire.ParseIPv6Header(data)
	if err != nil {
		return EtherUnknown{Data: data}
	}

	return EtherIPv6{
		Header: hdr,
		Inner:  parseIPv6Transport(hdr.NextHeader, payload),
	}
}

func parseIPv6Transport(nextHeader uint8, payload []byte) IPv6 {
	switch nextHeader {
	case wire.ProtoTCP:
		return parseTCPv6(payload)
	case wire.ProtoUDP:
		return parseUDPv6(payload)
	default:
		return IPv6Unknown{NextHeader: nextHeader, Data: payload}
	}
}

func parseTCPv4(data []byte) IPv4 {
	hdr, payload, err := wire.ParseTCPHeader(data)
	if err != nil {
		return IPv4Unknown{Protocol: wire.ProtoTCP, Data: data}
	}
	return IPv4TCP{Header: hdr, Inner: classifyTCP(payload)}
}

func parseTCPv6(data []byte) IPv6 {
	hdr, payload, err := wire.ParseTCPHeader(data)
	if err != nil {
		return IPv6Unknown{NextHeader: wire.ProtoTCP, Data: data}
	}
	return IPv6TCP{Header: hdr, Inner: classifyTCP(payload)}
}

func parseUDPv4(data []byte) IPv4 {
	hdr, payload, err := wire.ParseUDPHeader(data)
	if err != nil {
		return IPv4Unknown{Protocol: wire.ProtoUDP, Data: data}
	}
	return IPv4UDP{Header: hdr, Inner: classifyUDP(hdr, payload)}
}

func parseUDPv6(data []byte) IPv6 {
	hdr, payload, err := wire.ParseUDPHeader(data)
	if err != nil {
		return IPv6Unknown{NextHeader: wire.ProtoUDP, Data: data}
	}
	return IPv6UDP{Header: hdr, Inner: classifyUDP(hdr, payload)}
}
