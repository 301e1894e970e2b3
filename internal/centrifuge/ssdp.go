package centrifuge

import "strings"

// parseSSDP recognizes SSDP datagrams by matching the verb-plus-version
// string of the request line exactly, not merely its leading word, so that
// e.g. "NOTIFYfoo" falls through to UDP::Text/Binary instead of being
// misclassified as SSDP. Everything after the matched prefix is kept
// verbatim as Headers rather than parsed field by field (the original's
// "good enough for display" policy).
func parseSSDP(text string) (SSDP, error) {
	switch {
	case strings.HasPrefix(text, "M-SEARCH * HTTP/1.1\r\n"):
		return SSDPDiscover{Headers: text[len("M-SEARCH * HTTP/1.1\r\n"):]}, nil
	case text == "M-SEARCH * HTTP/1.0":
		return SSDPDiscover{}, nil
	case strings.HasPrefix(text, "NOTIFY * HTTP/1.1\r\n"):
		return SSDPNotify{Headers: text[len("NOTIFY * HTTP/1.1\r\n"):]}, nil
	case strings.HasPrefix(text, "BT-SEARCH * HTTP/1.1\r\n"):
		return SSDPBTSearch{Headers: text[len("BT-SEARCH * HTTP/1.1\r\n"):]}, nil
	default:
		return nil, errWrongProtocol()
	}
}
