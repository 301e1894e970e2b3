package centrifuge

import "encoding/binary"

// Byte-builder helpers used by the scenario tests below. They exist only to
// keep the test bodies readable; none of them are exported.

func ethHeader(dst, src [6]byte, etherType uint16) []byte {
	b := make([]byte, 14)
	copy(b[0:6], dst[:])
	copy(b[6:12], src[:])
	binary.BigEndian.PutUint16(b[12:14], etherType)
	return b
}

func arpPacket(operation uint16, srcMAC, destMAC [6]byte, srcIP, destIP [4]byte) []byte {
	b := make([]byte, 28)
	binary.BigEndian.PutUint16(b[0:2], 1)      // htype = ethernet
	binary.BigEndian.PutUint16(b[2:4], 0x0800) // ptype = ipv4
	b[4] = 6                                   // hlen
	b[5] = 4                                   // plen
	binary.BigEndian.PutUint16(b[6:8], operation)
	copy(b[8:14], srcMAC[:])
	copy(b[14:18], srcIP[:])
	copy(b[18:24], destMAC[:])
	copy(b[24:28], destIP[:])
	return b
}

func ipv4Header(protocol uint8, src, dst [4]byte, payloadLen int) []byte {
	b := make([]byte, 20)
	b[0] = 0x45 // version 4, IHL 5
	binary.BigEndian.PutUint16(b[2:4], uint16(20+payloadLen))
	b[8] = 64 // ttl
	b[9] = protocol
	copy(b[12:16], src[:])
	copy(b[16:20], dst[:])
	return b
}

func udpHeader(srcPort, dstPort uint16, payloadLen int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint16(b[0:2], srcPort)
	binary.BigEndian.PutUint16(b[2:4], dstPort)
	binary.BigEndian.PutUint16(b[4:6], uint16(8+payloadLen))
	return b
}

func tcpHeader(srcPort, dstPort uint16, flags byte) []byte {
	b := make([]byte, 20)
	binary.BigEndian.PutUint16(b[0:2], srcPort)
	binary.BigEndian.PutUint16(b[2:4], dstPort)
	b[12] = 5 << 4 // data offset = 5 (no options)
	b[13] = flags
	return b
}

func dnsQuery(id uint16, name string, qtype uint16) []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint16(b[0:2], id)
	binary.BigEndian.PutUint16(b[2:4], 0x0100) // QR=0, RD=1
	binary.BigEndian.PutUint16(b[4:6], 1)      // QDCOUNT

	b = append(b, encodeDNSName(name)...)
	qt := make([]byte, 4)
	binary.BigEndian.PutUint16(qt[0:2], qtype)
	binary.BigEndian.PutUint16(qt[2:4], 1) // class IN
	return append(b, qt...)
}

func encodeDNSName(name string) []byte {
	var out []byte
	start := 0
	for i := 0; i <= len(name); i++ {
		if i == len(name) || name[i] == '.' {
			label := name[start:i]
			out = append(out, byte(len(label)))
			out = append(out, label...)
			start = i + 1
		}
	}
	return append(out, 0)
}

func tlsClientHelloSNI(hostname string) []byte {
	sni := []byte{0, 0} // name_type + placeholder, fixed below
	nameLen := len(hostname)
	entry := append([]byte{0}, byte(nameLen>>8), byte(nameLen))
	entry = append(entry, hostname...)
	serverNameListLen := len(entry)
	sni = append([]byte{byte(serverNameListLen >> 8), byte(serverNameListLen)}, entry...)

	extBody := sni
	ext := append([]byte{0, 0}, byte(len(extBody)>>8), byte(len(extBody)))
	ext = append(ext, extBody...)

	extensions := ext
	extsLen := len(extensions)

	body := make([]byte, 0, 128)
	body = append(body, 3, 3) // client_version tls1.2
	body = append(body, make([]byte, 32)...) // random
	body = append(body, 0)                   // session_id_len
	body = append(body, 0, 2, 0, 0)           // cipher_suites_len=2, one cipher
	body = append(body, 1, 0)                 // compression_methods_len=1, null method
	body = append(body, byte(extsLen>>8), byte(extsLen))
	body = append(body, extensions...)

	handshake := make([]byte, 4, 4+len(body))
	handshake[0] = tlsHandshakeClientHello
	hsLen := len(body)
	handshake[1] = byte(hsLen >> 16)
	handshake[2] = byte(hsLen >> 8)
	handshake[3] = byte(hsLen)
	handshake = append(handshake, body...)

	record := make([]byte, 5, 5+len(handshake))
	record[0] = tlsContentTypeHandshake
	record[1], record[2] = 3, 3
	recLen := len(handshake)
	record[3] = byte(recLen >> 8)
	record[4] = byte(recLen)
	record = append(record, handshake...)

	return record
}
