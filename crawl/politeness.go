package crawl

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Pauser spaces out network requests to origin servers: a token-bucket
// floor per host plus a bounded random jitter so request timing doesn't
// look mechanical. This is courtesy toward the origin, not a correctness
// requirement.
type Pauser struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	jitter   time.Duration
}

// NewPauser creates a Pauser with the given requests-per-second floor and
// maximum random jitter added on top of each wait. Each host gets its own
// limiter with a burst of 1 (no bursting allowed).
func NewPauser(rps float64, jitter time.Duration) *Pauser {
	return &Pauser{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		jitter:   jitter,
	}
}

// Pause blocks until the rate limit allows a request to the host, then
// sleeps a random duration up to the configured jitter. Returns an error
// only if the context is canceled.
func (p *Pauser) Pause(ctx context.Context, host string) error {
	p.mu.Lock()
	limiter, ok := p.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(p.rps), 1)
		p.limiters[host] = limiter
	}
	p.mu.Unlock()

	if err := limiter.Wait(ctx); err != nil {
		return err
	}

	if p.jitter <= 0 {
		return nil
	}
	select {
	case <-time.After(rand.N(p.jitter)):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
