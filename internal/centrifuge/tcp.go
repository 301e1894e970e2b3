package centrifuge

import "unicode/utf8"

// classifyTCP classifies a TCP payload by content, not by port: empty, then
// TLS, then HTTP, then a NUL-byte check, then a UTF-8 validity check. Port
// numbers are deliberately not consulted (SPEC_FULL.md §4.2).
func classifyTCP(payload []byte) TCP {
	if len(payload) == 0 {
		return TCPEmpty{}
	}

	if msg, err := parseTLS(payload); err == nil {
		return TCPTLS{Message: msg}
	}

	if msg, err := parseHTTP(payload); err == nil {
		return TCPHTTP{Message: msg}
	}

	if containsNUL(payload) {
		return TCPBinary{Data: payload}
	}

	if utf8.Valid(payload) {
		return TCPText{Text: string(payload)}
	}

	return TCPBinary{Data: payload}
}

func containsNUL(data []byte) bool {
	for _, b := range data {
		if b == 0 {
			return true
		}
	}
	return false
}
