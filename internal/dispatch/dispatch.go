// Package dispatch runs the worker pool that pulls packets off a shared
// capture source, decodes and filters them, and funnels the survivors into
// a single sink channel — the concurrency shell around the centrifuge.
package dispatch

import (
	"errors"
	"io"
	"sync"

	"github.com/kpcyrd/sniffglue/internal/centrifuge"
	"github.com/kpcyrd/sniffglue/internal/diagnostics"
	"github.com/kpcyrd/sniffglue/internal/filter"
	"github.com/kpcyrd/sniffglue/internal/link"
)

// sinkChannelCapacity bounds how many decoded packets can queue for the
// sink before a worker blocks, per SPEC_FULL.md §4.5.
const sinkChannelCapacity = 256

// Source is the subset of capture.Source the worker pool depends on.
type Source interface {
	Next() ([]byte, error)
	Datalink() link.DataLink
}

// Pool runs N worker goroutines over a shared Source, each decoding and
// filtering its own packets before sending survivors to Out. Workers share
// Source's internal lock, so packet order is preserved only within a
// single worker, never globally across the pool.
type Pool struct {
	Out <-chan centrifuge.Raw

	out chan centrifuge.Raw
}

// Run starts the pool and returns immediately. Each worker exits once Next
// returns io.EOF (offline file exhausted) or a non-EOF error; live captures
// only stop this way if the interface itself goes away. Out is closed after
// every worker has exited, so ranging over Out ends when the capture does.
func Run(src Source, workers int, f filter.Filter) *Pool {
	if workers < 1 {
		workers = 1
	}

	out := make(chan centrifuge.Raw, sinkChannelCapacity)
	p := &Pool{Out: out, out: out}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			worker(src, f, out)
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return p
}

func worker(src Source, f filter.Filter, out chan<- centrifuge.Raw) {
	dl := src.Datalink()
	for {
		data, err := src.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				diagnostics.Warnf("dispatch: capture read failed: %v", err)
			}
			return
		}

		raw := centrifuge.Parse(dl, data)
		if !f.Matches(raw) {
			continue
		}
		out <- raw
	}
}
