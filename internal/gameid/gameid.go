// Package gameid generates identifiers for matches and hands.
package gameid

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// NewMatchID returns a random UUID naming one simulation run.
func NewMatchID() string {
	return uuid.NewString()
}

// Generator produces hand ids. Ids are ULIDs: they sort by creation time and
// stay strictly increasing when several are made within one millisecond.
type Generator struct {
	mu      sync.Mutex
	clock   quartz.Clock
	entropy *ulid.MonotonicEntropy
}

// NewGenerator creates a generator. A nil clock uses wall time and a nil
// entropy source uses crypto/rand; pass a seeded reader for reproducible ids.
func NewGenerator(clock quartz.Clock, entropy io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{clock: clock, entropy: ulid.Monotonic(entropy, 0)}
}

// Generate returns the next id.
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.clock.Now()), g.entropy).String()
}

// Validate checks that id is a well formed hand id.
func Validate(id string) error {
	if _, err := ulid.ParseStrict(id); err != nil {
		return fmt.Errorf("invalid hand id %q: %w", id, err)
	}
	return nil
}
