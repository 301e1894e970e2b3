package centrifuge

import "fmt"

// tlsCipherSuites maps the IANA TLS CipherSuite registry's better-known
// values to their mnemonic names. Anything missing falls back to its hex
// code rather than failing the parse.
var tlsCipherSuites = map[uint16]string{
	0x0000: "TLS_NULL_WITH_NULL_NULL",
	0x002f: "TLS_RSA_WITH_AES_128_CBC_SHA",
	0x0035: "TLS_RSA_WITH_AES_256_CBC_SHA",
	0x003c: "TLS_RSA_WITH_AES_128_CBC_SHA256",
	0x009c: "TLS_RSA_WITH_AES_128_GCM_SHA256",
	0x009d: "TLS_RSA_WITH_AES_256_GCM_SHA384",
	0xc02b: "TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256",
	0xc02c: "TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384",
	0xc02f: "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
	0xc030: "TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384",
	0xcca8: "TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256",
	0xcca9: "TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256",
	0x1301: "TLS_AES_128_GCM_SHA256",
	0x1302: "TLS_AES_256_GCM_SHA384",
	0x1303: "TLS_CHACHA20_POLY1305_SHA256",
}

func cipherSuiteName(code uint16) string {
	if name, ok := tlsCipherSuites[code]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_0x%04x", code)
}

// tlsVersionName maps the (major, minor) pair from a TLS record/handshake
// header to its conventional name.
func tlsVersionName(major, minor byte) string {
	switch {
	case major == 3 && minor == 0:
		return "ssl3.0"
	case major == 3 && minor == 1:
		return "tls1.0"
	case major == 3 && minor == 2:
		return "tls1.1"
	case major == 3 && minor == 3:
		return "tls1.2"
	case major == 3 && minor == 4:
		return "tls1.3"
	default:
		return fmt.Sprintf("unknown(%d.%d)", major, minor)
	}
}
