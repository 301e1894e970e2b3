package centrifuge

import (
	"testing"

	"github.com/kpcyrd/sniffglue/internal/link"
)

// FuzzParse exercises the top-level dispatcher across every link type,
// seeded with an ARP reply frame built by the same helpers as the scenario
// tests in centrifuge_test.go plus a few hand-picked edge cases (empty
// input, a bare Ethernet header, zeroed SLL and Tun input).
// centrifuge.Parse must never panic, matching property P1.
func FuzzParse(f *testing.F) {
	f.Add(0, []byte{})
	f.Add(0, ethHeader([6]byte{0xaa}, [6]byte{0xbb}, 0x0800))
	f.Add(0, append(ethHeader([6]byte{0xaa}, [6]byte{0xbb}, 0x0806),
		arpPacket(2, [6]byte{1}, [6]byte{2}, [4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2})...))
	f.Add(2, make([]byte, 16))
	f.Add(1, make([]byte, 10))

	links := []link.DataLink{link.Ethernet, link.Tun, link.Sll, link.RadioTap}

	f.Fuzz(func(t *testing.T, linkSel int, data []byte) {
		dl := links[((linkSel%len(links))+len(links))%len(links)]

		raw := Parse(dl, data)
		if raw == nil {
			t.Fatal("Parse returned nil")
		}
		_ = raw.NoiseLevel()
	})
}

// FuzzParseEthernet exercises the Ethernet entry point specifically, since
// it's the most commonly captured link type.
func FuzzParseEthernet(f *testing.F) {
	f.Add([]byte{})
	f.Add(ethHeader([6]byte{0xaa}, [6]byte{0xbb}, 0x0800))
	f.Add(append(ethHeader([6]byte{0xaa}, [6]byte{0xbb}, 0x0806),
		arpPacket(2, [6]byte{1}, [6]byte{2}, [4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2})...))

	f.Fuzz(func(t *testing.T, data []byte) {
		raw := ParseEthernet(data)
		if raw == nil {
			t.Fatal("ParseEthernet returned nil")
		}
		_ = raw.NoiseLevel()
	})
}
