package centrifuge

import "encoding/base64"

const (
	tlsContentTypeHandshake = 22
	tlsHandshakeClientHello = 1
	tlsHandshakeServerHello = 2
)

// parseTLS recognizes a single plaintext TLS record containing a ClientHello
// or ServerHello handshake message. Anything else (application data,
// alerts, other handshake messages, a non-TLS record) isn't a match, and
// classifyTCP falls through to HTTP/text/binary — matching the "only the
// first recognized application-layer record" Non-goal.
func parseTLS(data []byte) (TLS, error) {
	if len(data) < 5 {
		return nil, errWrongProtocol()
	}
	if data[0] != tlsContentTypeHandshake {
		return nil, errWrongProtocol()
	}
	recordLen := int(data[3])<<8 | int(data[4])
	if len(data) < 5+recordLen || recordLen < 4 {
		return nil, errParsingError()
	}

	body := data[5 : 5+recordLen]
	handshakeType := body[0]
	hsLen := int(body[1])<<16 | int(body[2])<<8 | int(body[3])
	if len(body) < 4+hsLen {
		return nil, errParsingError()
	}
	hs := body[4 : 4+hsLen]

	switch handshakeType {
	case tlsHandshakeClientHello:
		return parseClientHello(hs)
	case tlsHandshakeServerHello:
		return parseServerHello(hs)
	default:
		return nil, errUnknownProtocol()
	}
}

func parseClientHello(data []byte) (TLS, error) {
	if len(data) < 2+32+1 {
		return nil, errParsingError()
	}
	version := tlsVersionName(data[0], data[1])
	off := 2 + 32

	sessionIDLen := int(data[off])
	off++
	if off+sessionIDLen > len(data) {
		return nil, errParsingError()
	}
	sessionID := base64.StdEncoding.EncodeToString(data[off : off+sessionIDLen])
	off += sessionIDLen

	if off+2 > len(data) {
		return TLSClientHello{Version: version, SessionID: sessionID}, nil
	}
	cipherSuitesLen := int(data[off])<<8 | int(data[off+1])
	off += 2 + cipherSuitesLen
	if off >= len(data) {
		return TLSClientHello{Version: version, SessionID: sessionID}, nil
	}

	compressionLen := int(data[off])
	off += 1 + compressionLen
	if off+2 > len(data) {
		return TLSClientHello{Version: version, SessionID: sessionID}, nil
	}

	extensionsLen := int(data[off])<<8 | int(data[off+1])
	off += 2
	if off+extensionsLen > len(data) {
		extensionsLen = len(data) - off
	}
	hostname := findSNI(data[off : off+extensionsLen])

	return TLSClientHello{Version: version, SessionID: sessionID, Hostname: hostname}, nil
}

// findSNI scans a ClientHello's extension list for the server_name
// extension (type 0) and returns the first hostname entry, if any.
func findSNI(data []byte) *string {
	off := 0
	for off+4 <= len(data) {
		extType := int(data[off])<<8 | int(data[off+1])
		extLen := int(data[off+2])<<8 | int(data[off+3])
		off += 4
		if off+extLen > len(data) {
			return nil
		}
		extData := data[off : off+extLen]
		off += extLen

		if extType != 0 {
			continue
		}
		if len(extData) < 2 {
			return nil
		}
		listLen := int(extData[0])<<8 | int(extData[1])
		entries := extData[2:]
		if listLen > len(entries) {
			listLen = len(entries)
		}
		entries = entries[:listLen]

		if len(entries) < 3 {
			return nil
		}
		if entries[0] != 0 { // host_name name type
			return nil
		}
		nameLen := int(entries[1])<<8 | int(entries[2])
		if 3+nameLen > len(entries) {
			return nil
		}
		name := string(entries[3 : 3+nameLen])
		return &name
	}
	return nil
}

func parseServerHello(data []byte) (TLS, error) {
	if len(data) < 2+32+1 {
		return nil, errParsingError()
	}
	version := tlsVersionName(data[0], data[1])
	off := 2 + 32

	sessionIDLen := int(data[off])
	off++
	if off+sessionIDLen > len(data) {
		return nil, errParsingError()
	}
	sessionID := base64.StdEncoding.EncodeToString(data[off : off+sessionIDLen])
	off += sessionIDLen

	if off+2 > len(data) {
		return nil, errParsingError()
	}
	cipher := cipherSuiteName(uint16(data[off])<<8 | uint16(data[off+1]))

	return TLSServerHello{Version: version, SessionID: sessionID, Cipher: cipher}, nil
}
