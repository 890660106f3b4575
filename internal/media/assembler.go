package media

import "sync"

// Assembler owns the criteria state for one listing screen, identified by a
// fetch key. Every mutation returns the merged criteria together with a
// generation token; a fetch started for an older generation must discard its
// result, so rapid successive mutations coalesce to a single fetch for the
// newest criteria instead of a queue of stale requests racing to publish.
type Assembler struct {
	fetchKey string

	mu       sync.Mutex
	criteria Criteria
	gen      uint64
}

// NewAssembler creates an assembler for the given fetch key with empty
// criteria.
func NewAssembler(fetchKey string) *Assembler {
	return &Assembler{fetchKey: fetchKey}
}

// FetchKey returns the listing identity this assembler serves.
func (a *Assembler) FetchKey() string {
	return a.fetchKey
}

// Criteria returns the current criteria.
func (a *Assembler) Criteria() Criteria {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.criteria
}

// Apply merges a patch and invalidates any fetch in flight for an older
// generation.
func (a *Assembler) Apply(p Patch) (Criteria, uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.criteria = a.criteria.Apply(p)
	a.gen++
	return a.criteria, a.gen
}

// Clear resets to empty criteria and invalidates any fetch in flight.
func (a *Assembler) Clear() (Criteria, uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.criteria = a.criteria.Clear()
	a.gen++
	return a.criteria, a.gen
}

// Latest reports whether the given generation is still the newest. A false
// result means the fetch was superseded and its response must not be
// published.
func (a *Assembler) Latest(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return gen == a.gen
}
