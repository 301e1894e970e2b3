// Package link maps pcap DLT_* linktype codes onto the handful of
// link-layer framings the centrifuge knows how to peel off.
package link

import "fmt"

// DataLink identifies the link-layer framing of a captured packet.
type DataLink int

const (
	Ethernet DataLink = iota
	Tun
	Sll
	RadioTap
)

func (d DataLink) String() string {
	switch d {
	case Ethernet:
		return "ethernet"
	case Tun:
		return "tun"
	case Sll:
		return "sll"
	case RadioTap:
		return "radiotap"
	default:
		return "unknown"
	}
}

// FromLinktype maps a pcap DLT_* code to a DataLink. These are the four
// linktypes a live capture or pcap file this tool reads will ever report.
func FromLinktype(code int) (DataLink, error) {
	switch code {
	case 1: // DLT_EN10MB
		return Ethernet, nil
	case 12: // DLT_RAW
		return Tun, nil
	case 113: // DLT_LINUX_SLL
		return Sll, nil
	case 127: // DLT_IEEE802_11_RADIO
		return RadioTap, nil
	default:
		return 0, fmt.Errorf("link: unsupported linktype %d", code)
	}
}
