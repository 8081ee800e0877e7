package llm

import (
	"fmt"
	"sync"
)

// Pool is the ordered set of upstream credentials with a shared rotation
// cursor. The cursor is process-wide: when one request rotates off a failing
// credential, the next request starts at the credential after it instead of
// rediscovering the failure. This spreads load away from dead keys at the
// cost of a small amount of shared mutable state.
type Pool struct {
	mu     sync.Mutex
	creds  []Credential
	cursor int
}

func NewPool(creds []Credential) *Pool {
	return &Pool{creds: creds}
}

// NewPoolFromKeys builds a pool from raw API keys, assigning each a stable
// positional label for logging.
func NewPoolFromKeys(keys []string) *Pool {
	creds := make([]Credential, len(keys))
	for i, k := range keys {
		creds[i] = Credential{Label: poolLabel(i), Key: k}
	}
	return NewPool(creds)
}

func poolLabel(i int) string {
	return fmt.Sprintf("key-%d", i+1)
}

// Size returns the number of credentials in the pool.
func (p *Pool) Size() int {
	return len(p.creds)
}

// Snapshot returns the credentials in rotation order, starting at the current
// cursor. The returned slice is a copy; callers iterate it without holding
// the pool lock across their (slow) upstream calls.
func (p *Pool) Snapshot() []Credential {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Credential, 0, len(p.creds))
	for i := 0; i < len(p.creds); i++ {
		out = append(out, p.creds[(p.cursor+i)%len(p.creds)])
	}
	return out
}

// Advance moves the shared cursor past the credential that just failed, so
// subsequent requests start with the next one.
func (p *Pool) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.creds) > 0 {
		p.cursor = (p.cursor + 1) % len(p.creds)
	}
}
