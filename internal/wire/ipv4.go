package wire

import "net"

// IP protocol numbers used for IPv4/IPv6 next-layer dispatch.
const (
	ProtoICMP uint8 = 1
	ProtoTCP  uint8 = 6
	ProtoUDP  uint8 = 17
)

const ipv4MinHeaderLen = 20

// IPv4Header is the fixed portion of the IPv4 header plus the addresses;
// options (if IHL > 5) are skipped rather than retained, matching the
// centrifuge's "only the fields we need" policy.
type IPv4Header struct {
	Version        uint8
	IHL             uint8
	TOS            uint8
	TotalLength    uint16
	ID             uint16
	Flags          uint8
	FragmentOffset uint16
	TTL            uint8
	Protocol       uint8
	Checksum       uint16
	SrcAddr        net.IP
	DestAddr       net.IP
}

// SourceAddr and DestAddrStr implement the small address-display capability
// shared by IPv4Header and IPv6Header, used by the renderer instead of a
// deep type hierarchy.
func (h IPv4Header) SourceAddr() string { return h.SrcAddr.String() }
func (h IPv4Header) DestAddrStr() string { return h.DestAddr.String() }

// ParseIPv4Header decodes the IPv4 header (including any option bytes) and
// returns the payload that follows it.
func ParseIPv4Header(data []byte) (IPv4Header, []byte, error) {
	if len(data) < ipv4MinHeaderLen {
		return IPv4Header{}, nil, ErrTruncated
	}

	versionIHL := data[0]
	version := versionIHL >> 4
	ihl := versionIHL & 0x0f
	headerLen := int(ihl) * 4
	if headerLen < ipv4MinHeaderLen || len(data) < headerLen {
		return IPv4Header{}, nil, ErrTruncated
	}

	flagsFrag := be16(data[6:8])

	hdr := IPv4Header{
		Version:        version,
		IHL:             ihl,
		TOS:            data[1],
		TotalLength:    be16(data[2:4]),
		ID:             be16(data[4:6]),
		Flags:          uint8(flagsFrag >> 13),
		FragmentOffset: flagsFrag & 0x1fff,
		TTL:            data[8],
		Protocol:       data[9],
		Checksum:       be16(data[10:12]),
		SrcAddr:        copyIP(data[12:16]),
		DestAddr:       copyIP(data[16:20]),
	}

	return hdr, data[headerLen:], nil
}
