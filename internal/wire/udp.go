package wire

const udpHeaderLen = 8

// UDPHeader is the fixed 8-byte UDP header.
type UDPHeader struct {
	SrcPort  uint16
	DestPort uint16
	Length   uint16
	Checksum uint16
}

// ParseUDPHeader decodes the UDP header and returns the payload.
func ParseUDPHeader(data []byte) (UDPHeader, []byte, error) {
	if len(data) < udpHeaderLen {
		return UDPHeader{}, nil, ErrTruncated
	}

	hdr := UDPHeader{
		SrcPort:  be16(data[0:2]),
		DestPort: be16(data[2:4]),
		Length:   be16(data[4:6]),
		Checksum: be16(data[6:8]),
	}

	return hdr, data[udpHeaderLen:], nil
}
