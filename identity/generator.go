package identity

import (
	"math/rand/v2"
	"os"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/valentin-kaiser/go-deviceid/machine"
)

// sequence separates generations that fall into the same tick
var sequence atomic.Uint32

// Candidates are the raw entropy values a seed is mixed from:
// wall clock, process clock, process id, tick counter and a stack address
type Candidates [5]uint32

// Generator produces fresh identifiers
type Generator struct {
	entropy func() Candidates
}

// NewGenerator creates a generator fed by the platform entropy sources
func NewGenerator() *Generator {
	return &Generator{entropy: collect}
}

// WithEntropy replaces the entropy source, mainly for tests
func (g *Generator) WithEntropy(entropy func() Candidates) *Generator {
	g.entropy = entropy
	return g
}

// Generate returns a new identifier
func (g *Generator) Generate() Identifier {
	return GenerateFrom(g.entropy())
}

// GenerateFrom deterministically builds an identifier from the candidates.
// Every hex position combines the seeded random stream with a position
// dependent re-mix of one candidate.
func GenerateFrom(c Candidates) Identifier {
	seed := Mix(c[:]...)
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	var b [Length]byte
	for i := range b {
		switch {
		case i == 0:
			b[i] = First
		case i == Length-1:
			b[i] = Last
		case isSeparator(i):
			b[i] = Separator
		default:
			b[i] = alphabet[(r.Uint32()^Avalanche(uint32(i)*c[i%len(c)]))%16]
		}
	}
	return Identifier(b[:])
}

// collect gathers the platform entropy candidates
func collect() Candidates {
	var c Candidates
	c[0] = uint32(time.Now().Unix())
	c[1] = machine.ProcessClock()
	c[2] = uint32(os.Getpid())
	c[3] = machine.Ticks() + sequence.Add(1)
	// only the bits of the address are used, never the pointer
	c[4] = uint32(uintptr(unsafe.Pointer(&c)))
	return c
}
