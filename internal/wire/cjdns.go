package wire

const (
	cjdnsPasswordLen = 20
	cjdnsPubkeyLen   = 32
	cjdnsHeaderLen   = 2 + 2 + 2 + 2 + 2 + cjdnsPasswordLen + cjdnsPubkeyLen // 62
)

// CjdnsBeacon is the cjdns LAN beacon frame that rides under EtherType
// 0xFC00: a zero tag, a length field, a repeated 0xFC00 tag, two bytes of
// padding, a 16-bit beacon version, a 20-byte password, and a 32-byte
// public key.
type CjdnsBeacon struct {
	Version  uint16
	Password []byte
	Pubkey   []byte
}

// ParseCjdnsBeacon decodes the beacon. Unlike the other wire parsers it
// requires the input to be consumed exactly — a cjdns beacon is always
// exactly this shape, so leftover bytes mean this wasn't actually one.
func ParseCjdnsBeacon(data []byte) (CjdnsBeacon, error) {
	if len(data) != cjdnsHeaderLen {
		return CjdnsBeacon{}, ErrTruncated
	}
	if data[0] != 0x00 || data[1] != 0x00 {
		return CjdnsBeacon{}, ErrTruncated
	}
	if data[4] != 0xfc || data[5] != 0x00 {
		return CjdnsBeacon{}, ErrTruncated
	}

	off := 8
	version := be16(data[off : off+2])
	off += 2
	password := append([]byte(nil), data[off:off+cjdnsPasswordLen]...)
	off += cjdnsPasswordLen
	pubkey := append([]byte(nil), data[off:off+cjdnsPubkeyLen]...)

	return CjdnsBeacon{
		Version:  version,
		Password: password,
		Pubkey:   pubkey,
	}, nil
}
