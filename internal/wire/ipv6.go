package wire

import "net"

const ipv6HeaderLen = 40

// IPv6Header is the fixed 40-byte IPv6 header. Extension headers are not
// walked (spec Non-goal / Open Question): NextHeader is treated as the
// final protocol selector, same as the original implementation.
type IPv6Header struct {
	TrafficClass uint8
	FlowLabel    uint32
	PayloadLen   uint16
	NextHeader   uint8
	HopLimit     uint8
	SrcAddr      net.IP
	DestAddr     net.IP
}

func (h IPv6Header) SourceAddr() string  { return "[" + h.SrcAddr.String() + "]" }
func (h IPv6Header) DestAddrStr() string { return "[" + h.DestAddr.String() + "]" }

// ParseIPv6Header decodes the fixed IPv6 header and returns the payload.
func ParseIPv6Header(data []byte) (IPv6Header, []byte, error) {
	if len(data) < ipv6HeaderLen {
		return IPv6Header{}, nil, ErrTruncated
	}

	versionClassFlow := be32(data[0:4])
	hdr := IPv6Header{
		TrafficClass: uint8((versionClassFlow >> 20) & 0xff),
		FlowLabel:    versionClassFlow & 0xfffff,
		PayloadLen:   be16(data[4:6]),
		NextHeader:   data[6],
		HopLimit:     data[7],
		SrcAddr:      copyIP(data[8:24]),
		DestAddr:     copyIP(data[24:40]),
	}

	return hdr, data[ipv6HeaderLen:], nil
}
