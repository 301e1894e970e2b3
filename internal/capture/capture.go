// Package capture wraps a pcap handle — live interface or offline file —
// behind the minimal Source interface the dispatcher needs, translating the
// handle's reported linktype into the centrifuge's DataLink enum once at
// open time.
package capture

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/gopacket/pcap"

	"github.com/kpcyrd/sniffglue/internal/link"
)

// Source produces raw packet bytes from either a live capture handle or an
// offline pcap/pcapng file. Next is safe to call concurrently; callers
// don't need their own mutex, matching §5's "shared blocking handle" model.
type Source struct {
	handle   *pcap.Handle
	datalink link.DataLink
	mu       sync.Mutex
}

// Config controls how a live interface capture is opened. ImmediateMode
// delivers packets to the application as soon as they arrive instead of
// waiting for the kernel capture buffer to fill or time out — §4.4's
// open(device, {promisc, immediate_mode}) contract.
type Config struct {
	Interface     string
	Promisc       bool
	ImmediateMode bool
	SnapLen       int32
}

// DefaultSnapLen matches libpcap's own default and is large enough to
// capture a full-size Ethernet frame plus any realistic encapsulation.
const DefaultSnapLen int32 = 262144

// OpenLive opens a live capture on the named interface. The handle is
// configured through an InactiveHandle rather than the simpler OpenLive
// helper because that helper has no way to express immediate mode, which
// pcap_set_immediate_mode requires be set before the handle is activated.
func OpenLive(cfg Config) (*Source, error) {
	snap := cfg.SnapLen
	if snap == 0 {
		snap = DefaultSnapLen
	}

	inactive, err := pcap.NewInactiveHandle(cfg.Interface)
	if err != nil {
		return nil, fmt.Errorf("capture: create inactive handle for %q: %w", cfg.Interface, err)
	}
	defer inactive.CleanUp()

	if err := inactive.SetSnapLen(int(snap)); err != nil {
		return nil, fmt.Errorf("capture: set snaplen: %w", err)
	}
	if err := inactive.SetPromisc(cfg.Promisc); err != nil {
		return nil, fmt.Errorf("capture: set promiscuous mode: %w", err)
	}
	if err := inactive.SetImmediateMode(cfg.ImmediateMode); err != nil {
		return nil, fmt.Errorf("capture: set immediate mode: %w", err)
	}
	if err := inactive.SetTimeout(pcap.BlockForever); err != nil {
		return nil, fmt.Errorf("capture: set timeout: %w", err)
	}

	handle, err := inactive.Activate()
	if err != nil {
		return nil, fmt.Errorf("capture: activate interface %q: %w", cfg.Interface, err)
	}
	return newSource(handle)
}

// OpenOffline opens a pcap/pcapng capture file for replay.
func OpenOffline(path string) (*Source, error) {
	handle, err := pcap.OpenOffline(path)
	if err != nil {
		return nil, fmt.Errorf("capture: open file %q: %w", path, err)
	}
	return newSource(handle)
}

func newSource(handle *pcap.Handle) (*Source, error) {
	dl, err := link.FromLinktype(int(handle.LinkType()))
	if err != nil {
		handle.Close()
		return nil, fmt.Errorf("capture: %w", err)
	}
	return &Source{handle: handle, datalink: dl}, nil
}

// Datalink reports the link-layer framing this source was opened with.
func (s *Source) Datalink() link.DataLink { return s.datalink }

// Next blocks until the next packet is available and returns its raw bytes.
// It returns io.EOF once an offline file is exhausted. Multiple goroutines
// may call Next concurrently; each call gets its own packet.
func (s *Source) Next() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, _, err := s.handle.ReadPacketData()
	if err == pcap.NextErrorNoMorePackets || err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("capture: read packet: %w", err)
	}
	return data, nil
}

// Close releases the underlying pcap handle.
func (s *Source) Close() {
	s.handle.Close()
}
