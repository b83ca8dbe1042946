package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is the opaque identifier used for users, jobs and request IDs. It is a
// ULID so records sort by creation time when ordered by ID.
type ID string

var (
	globalOnce sync.Once
	global     *generator
)

// generator safely hands out ULIDs from a monotonic source. The monotonic
// entropy is not safe for concurrent use so it sits behind a mutex.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) newAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := ulid.MustNew(ulid.Timestamp(t), g.entropy)
	return ID(u.String())
}

func initGlobal() {
	global = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a new ID stamped with the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt generates an ID at the provided time. Tests use it to build records
// with a known creation month.
func NewAt(t time.Time) ID {
	globalOnce.Do(initGlobal)
	return global.newAt(t.UTC())
}

// Valid reports whether s is a well formed ID. Handlers use it to reject path
// parameters before they reach the store.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// String returns the canonical string form.
func (id ID) String() string { return string(id) }
