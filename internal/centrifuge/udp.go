package centrifuge

import (
	"unicode/utf8"

	"github.com/kpcyrd/sniffglue/internal/wire"
)

// classifyUDP classifies a UDP payload: empty becomes an empty Binary; well
// known ports are tried first (DNS, DHCP, Dropbox); anything left falls
// through a NUL-byte check, a UTF-8 check, and an SSDP prefix match before
// settling on plain Text (SPEC_FULL.md §4.2).
func classifyUDP(hdr wire.UDPHeader, payload []byte) UDP {
	if len(payload) == 0 {
		return UDPBinary{Data: payload}
	}

	if hdr.SrcPort == 53 || hdr.DestPort == 53 {
		if msg, err := parseDNS(payload); err == nil {
			return UDPDNS{Message: msg}
		}
	}

	if (hdr.SrcPort == 67 && hdr.DestPort == 68) || (hdr.SrcPort == 68 && hdr.DestPort == 67) {
		if msg, err := parseDHCP(payload); err == nil {
			return UDPDHCP{Message: msg}
		}
	}

	if hdr.SrcPort == 17500 && hdr.DestPort == 17500 {
		if beacon, err := parseDropboxBeacon(payload); err == nil {
			return UDPDropbox{Beacon: beacon}
		}
	}

	if containsNUL(payload) {
		return UDPBinary{Data: payload}
	}

	if !utf8.Valid(payload) {
		return UDPBinary{Data: payload}
	}

	text := string(payload)
	if msg, err := parseSSDP(text); err == nil {
		return UDPSSDP{Message: msg}
	}

	return UDPText{Text: text}
}
