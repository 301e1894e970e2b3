package wire

const tcpMinHeaderLen = 20

// TCPHeader is the fixed TCP header (RFC 793). Option bytes (if DataOffset
// > 5) are skipped rather than retained.
type TCPHeader struct {
	SrcPort       uint16
	DestPort      uint16
	SeqNum        uint32
	AckNum        uint32
	DataOffset    uint8
	FlagURG       bool
	FlagACK       bool
	FlagPSH       bool
	FlagRST       bool
	FlagSYN       bool
	FlagFIN       bool
	Window        uint16
	Checksum      uint16
	UrgentPointer uint16
}

// IsControl reports whether this is a control segment (RST/SYN/FIN) as
// opposed to a data segment, the distinction the noise-level rules use.
func (h TCPHeader) IsControl() bool {
	return h.FlagRST || h.FlagSYN || h.FlagFIN
}

// ParseTCPHeader decodes the TCP header and returns the payload bytes that
// follow it (after any options).
func ParseTCPHeader(data []byte) (TCPHeader, []byte, error) {
	if len(data) < tcpMinHeaderLen {
		return TCPHeader{}, nil, ErrTruncated
	}

	offsetReserved := data[12]
	dataOffset := offsetReserved >> 4
	headerLen := int(dataOffset) * 4
	if headerLen < tcpMinHeaderLen || len(data) < headerLen {
		return TCPHeader{}, nil, ErrTruncated
	}

	flags := data[13]

	hdr := TCPHeader{
		SrcPort:       be16(data[0:2]),
		DestPort:      be16(data[2:4]),
		SeqNum:        be32(data[4:8]),
		AckNum:        be32(data[8:12]),
		DataOffset:    dataOffset,
		FlagURG:       flags&0x20 != 0,
		FlagACK:       flags&0x10 != 0,
		FlagPSH:       flags&0x08 != 0,
		FlagRST:       flags&0x04 != 0,
		FlagSYN:       flags&0x02 != 0,
		FlagFIN:       flags&0x01 != 0,
		Window:        be16(data[14:16]),
		Checksum:      be16(data[16:18]),
		UrgentPointer: be16(data[18:20]),
	}

	return hdr, data[headerLen:], nil
}
