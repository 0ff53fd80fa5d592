package testutil

import (
	"fmt"
	"sync"
)

// StaticInstanceID is the instance ID StaticIDGenerator hands out when none
// is given. Golden files embed it.
const StaticInstanceID = "00000000-0000-7000-8000-000000000001"

// StaticIDGenerator returns the same instance ID on every call.
//
// Thread-safety: StaticIDGenerator is stateless and safe for concurrent use.
type StaticIDGenerator struct {
	id string
}

// NewStaticIDGenerator creates a generator returning id, or
// StaticInstanceID if id is empty.
func NewStaticIDGenerator(id string) *StaticIDGenerator {
	if id == "" {
		id = StaticInstanceID
	}
	return &StaticIDGenerator{id: id}
}

// Generate implements platform.IDGenerator.
func (g *StaticIDGenerator) Generate() string {
	return g.id
}

// SequenceIDGenerator numbers instance IDs "<prefix>-1", "<prefix>-2", ...
// so successive OS values in one test (a restart chain) are told apart.
type SequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequenceIDGenerator creates a generator whose first ID is prefix-1.
func NewSequenceIDGenerator(prefix string) *SequenceIDGenerator {
	return &SequenceIDGenerator{prefix: prefix}
}

// Generate implements platform.IDGenerator.
func (g *SequenceIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
