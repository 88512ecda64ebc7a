package scope

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// TokenSource produces scope tokens. A token doubles as an HTML attribute
// name and a CSS attribute-selector body, so it must start with a letter
// and contain only letters, digits and hyphens.
type TokenSource interface {
	Next() string
}

// CounterSource issues tokens from a monotonic atomic counter. The zero
// value is ready to use and safe for concurrent renders.
type CounterSource struct {
	prefix string
	n      atomic.Uint64
}

// NewCounterSource creates a counter source with a custom token prefix.
func NewCounterSource(prefix string) *CounterSource {
	return &CounterSource{prefix: prefix}
}

// Next returns the next token in the sequence.
func (c *CounterSource) Next() string {
	prefix := c.prefix
	if prefix == "" {
		prefix = "arb-"
	}
	return prefix + strconv.FormatUint(c.n.Add(1), 10)
}

// defaultSource is the process-wide token counter used when no source is
// injected.
var defaultSource = &CounterSource{}

// DefaultSource returns the process-wide counter source.
func DefaultSource() TokenSource { return defaultSource }

// UUIDSource issues random tokens. Unlike CounterSource the tokens are
// unpredictable across process restarts, which keeps scope attributes
// from colliding when output of several processes is stitched together.
type UUIDSource struct{}

// Next returns a fresh random token.
func (UUIDSource) Next() string {
	id := uuid.NewString()
	return "arb-" + strings.SplitN(id, "-", 2)[0]
}

// SeqSource replays a fixed token sequence. For deterministic tests.
type SeqSource struct {
	Tokens []string
	i      atomic.Uint64
}

// Next returns the next token from the sequence, wrapping around at the end.
func (s *SeqSource) Next() string {
	if len(s.Tokens) == 0 {
		return ""
	}
	n := s.i.Add(1) - 1
	return s.Tokens[int(n)%len(s.Tokens)]
}
