package wire

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEthernetFrameTruncated(t *testing.T) {
	_, _, err := ParseEthernetFrame([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestParseIPv4HeaderTruncated(t *testing.T) {
	_, _, err := ParseIPv4Header(make([]byte, 10))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestParseIPv4HeaderFields(t *testing.T) {
	data := make([]byte, 20)
	data[0] = 0x45
	data[9] = ProtoTCP
	data[12], data[13], data[14], data[15] = 10, 0, 0, 1
	data[16], data[17], data[18], data[19] = 10, 0, 0, 2

	hdr, rest, err := ParseIPv4Header(data)
	assert.NoError(t, err)
	assert.Equal(t, uint8(5), hdr.IHL)
	assert.Equal(t, ProtoTCP, hdr.Protocol)
	assert.Equal(t, "10.0.0.1", hdr.SourceAddr())
	assert.Empty(t, rest)
}

func TestParseTCPHeaderFlags(t *testing.T) {
	data := make([]byte, 20)
	data[12] = 5 << 4
	data[13] = 0x02 // SYN

	hdr, _, err := ParseTCPHeader(data)
	assert.NoError(t, err)
	assert.True(t, hdr.FlagSYN)
	assert.True(t, hdr.IsControl())
}

func TestWireParsersNeverPanicOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 500; n++ {
		data := make([]byte, rng.Intn(128))
		rng.Read(data)

		assert.NotPanics(t, func() {
			ParseEthernetFrame(data)
			ParseARPPacket(data)
			ParseIPv4Header(data)
			ParseIPv6Header(data)
			ParseTCPHeader(data)
			ParseUDPHeader(data)
			ParseICMPHeader(data)
			ParseSLLHeader(data)
			ParseCjdnsBeacon(data)
		})
	}
}
