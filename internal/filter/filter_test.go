package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpcyrd/sniffglue/internal/centrifuge"
	"github.com/kpcyrd/sniffglue/internal/filter"
)

func TestNewClampsVerbosity(t *testing.T) {
	assert.Equal(t, centrifuge.Zero, filter.New(0).Ceiling)
	assert.Equal(t, centrifuge.Maximum, filter.New(99).Ceiling)
}

func TestMatchesRespectsCeiling(t *testing.T) {
	f := filter.New(1) // ceiling = One

	assert.False(t, f.Matches(centrifuge.RawUnknown{Data: nil}))
	assert.True(t, f.Matches(centrifuge.RawEther{Inner: centrifuge.EtherArp{}}))
}
