package todo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new tasks.
type IDGenerator interface {
	NextID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

// NextID calls f.
func (f IDGeneratorFunc) NextID() string {
	return f()
}

// UUIDGenerator returns random version 4 UUIDs.
type UUIDGenerator struct{}

// NextID returns a new UUID string.
func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}

// SequenceGenerator returns Prefix followed by an increasing counter,
// starting at 1. The zero value uses the prefix "T".
type SequenceGenerator struct {
	Prefix string
	next   int
}

// NewSequenceGenerator creates a sequence generator with the given prefix.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

// NextID returns the next id in the sequence.
func (g *SequenceGenerator) NextID() string {
	g.next++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "T"
	}
	return prefix + strconv.Itoa(g.next)
}

// ID strategy names accepted by NewIDGenerator.
const (
	IDStrategyUUID     = "uuid"
	IDStrategySequence = "sequence"
)

// NewIDGenerator returns the generator for a strategy name.
// Names are matched case-insensitively; anything else is an error.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case IDStrategyUUID:
		return UUIDGenerator{}, nil
	case IDStrategySequence:
		return NewSequenceGenerator("T"), nil
	default:
		return nil, fmt.Errorf("invalid id strategy %q (want %s or %s)", strategy, IDStrategyUUID, IDStrategySequence)
	}
}
