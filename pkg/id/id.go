// Package id issues ULID run identifiers.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator issues time-sortable run identifiers. The caller owns the value;
// there is no package-global generator state.
type Generator struct {
	mu   sync.Mutex
	mono io.Reader
}

// NewGenerator seeds a PRNG from crypto/rand so ULID entropy is
// unpredictable. ulid.Monotonic keeps IDs generated within the same
// millisecond lexicographically increasing.
func NewGenerator() *Generator {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		mono: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
	}
}

// New returns a ULID string.
//
// Run records are keyed by these, so listing a journal by primary key also
// lists runs in the order they happened.
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), g.mono)
	if err != nil {
		// Errors are extremely unlikely unless time goes backwards or entropy fails.
		panic(err)
	}
	return id.String()
}
