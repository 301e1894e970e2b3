// Package render turns a decoded packet into the three output layouts
// spec.md's external interfaces call for: compact (colorized), debug, and
// JSON.
package render

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/kpcyrd/sniffglue/internal/centrifuge"
	"github.com/kpcyrd/sniffglue/internal/wire"
)

// Layout selects how Render formats a packet.
type Layout int

const (
	Compact Layout = iota
	Debug
	JSON
)

// Render formats a single decoded packet for display.
func Render(raw centrifuge.Raw, layout Layout) (string, error) {
	switch layout {
	case JSON:
		return renderJSON(raw)
	case Debug:
		return renderDebug(raw), nil
	default:
		return renderCompact(raw), nil
	}
}

func renderJSON(raw centrifuge.Raw) (string, error) {
	b, err := gojson.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("render: marshal json: %w", err)
	}
	return string(b), nil
}

func renderDebug(raw centrifuge.Raw) string {
	return fmt.Sprintf("%#v", raw)
}

// renderCompact produces the one-line, color-coded summary this tool
// prints by default. Ethernet lines are colored by noise level (see
// noiseColor): opaque binary in red and unrecognized content in dim red, to
// draw the eye toward the rarer, more interesting packets. Tun and Sll lines
// are not colored.
func renderCompact(raw centrifuge.Raw) string {
	var sb strings.Builder
	writeCompact(&sb, raw)
	return sb.String()
}

func writeCompact(sb *strings.Builder, raw centrifuge.Raw) {
	switch v := raw.(type) {
	case centrifuge.RawEther:
		sb.WriteString(colorize(noiseColor(raw.NoiseLevel()), fmt.Sprintf("[ether] %s -> %s: ", v.Frame.SrcMAC, v.Frame.DestMAC)))
		writeEtherCompact(sb, v.Inner)
	case centrifuge.RawTun:
		sb.WriteString("[tun] ")
		writeEtherCompact(sb, v.Inner)
	case centrifuge.RawSll:
		sb.WriteString("[sll] ")
		writeEtherCompact(sb, v.Inner)
	case centrifuge.RawUnknown:
		sb.WriteString(colorize(noiseColor(centrifuge.Maximum), fmt.Sprintf("[unknown link layer, %d bytes]", len(v.Data))))
	}
}

func writeEtherCompact(sb *strings.Builder, e centrifuge.Ether) {
	switch v := e.(type) {
	case centrifuge.EtherArp:
		sb.WriteString(arpSummary(v.Packet))
	case centrifuge.EtherIPv4:
		sb.WriteString(fmt.Sprintf("%s -> %s ", v.Header.SourceAddr(), v.Header.DestAddrStr()))
		writeIPv4Compact(sb, v.Inner)
	case centrifuge.EtherIPv6:
		sb.WriteString(fmt.Sprintf("%s -> %s ", v.Header.SourceAddr(), v.Header.DestAddrStr()))
		writeIPv6Compact(sb, v.Inner)
	case centrifuge.EtherCjdns:
		sb.WriteString("cjdns beacon")
	case centrifuge.EtherUnknown:
		sb.WriteString(fmt.Sprintf("unknown ethertype, %d bytes", len(v.Data)))
	}
}

func arpSummary(a centrifuge.ARP) string {
	var p wire.ARPPacket
	verb := "unknown"
	switch v := a.(type) {
	case centrifuge.ARPRequest:
		p, verb = v.Packet, "request"
	case centrifuge.ARPReply:
		p, verb = v.Packet, "reply"
	}
	return fmt.Sprintf("arp %s: %s is-at %s", verb, p.SrcIP, p.SrcMAC)
}

func writeIPv4Compact(sb *strings.Builder, i centrifuge.IPv4) {
	switch v := i.(type) {
	case centrifuge.IPv4TCP:
		sb.WriteString(fmt.Sprintf("tcp %d -> %d", v.Header.SrcPort, v.Header.DestPort))
	case centrifuge.IPv4UDP:
		sb.WriteString(fmt.Sprintf("udp %d -> %d", v.Header.SrcPort, v.Header.DestPort))
	case centrifuge.IPv4ICMP:
		sb.WriteString("icmp")
	case centrifuge.IPv4Unknown:
		sb.WriteString(fmt.Sprintf("unknown protocol %d", v.Protocol))
	}
}

func writeIPv6Compact(sb *strings.Builder, i centrifuge.IPv6) {
	switch v := i.(type) {
	case centrifuge.IPv6TCP:
		sb.WriteString(fmt.Sprintf("tcp %d -> %d", v.Header.SrcPort, v.Header.DestPort))
	case centrifuge.IPv6UDP:
		sb.WriteString(fmt.Sprintf("udp %d -> %d", v.Header.SrcPort, v.Header.DestPort))
	case centrifuge.IPv6Unknown:
		sb.WriteString(fmt.Sprintf("unknown next-header %d", v.NextHeader))
	}
}
