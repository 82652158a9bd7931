// Package ratelimit throttles API clients with per-route token buckets.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused bucket is kept before it is pruned
const idleTTL = time.Hour

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func newBucket(r Rule, now time.Time) *bucket {
	burst := r.Burst
	if burst <= 0 {
		burst = r.Limit
	}
	every := r.Window / time.Duration(r.Limit)
	return &bucket{lim: rate.NewLimiter(rate.Every(every), burst), seen: now}
}

// take consumes one token if available and reports the remaining tokens and
// the wait until the next token.
func (b *bucket) take(now time.Time) (ok bool, remaining int, wait time.Duration) {
	b.seen = now
	if b.lim.AllowN(now, 1) {
		return true, int(b.lim.TokensAt(now)), 0
	}
	r := b.lim.ReserveN(now, 1)
	wait = r.DelayFrom(now)
	r.CancelAt(now)
	return false, 0, wait
}

// Decision describes the outcome of a single Allow call
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limited reports whether the request was matched by a finite rule
func (d Decision) Limited() bool {
	return d.Limit > 0
}

// Limiter tracks one bucket per client and rule
type Limiter struct {
	cfg Config
	now func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastPrune time.Time
}

// NewLimiter creates a limiter for cfg
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow decides whether client may call method path now
func (l *Limiter) Allow(client, method, path string) Decision {
	if !l.cfg.Enabled {
		return Decision{Allowed: true}
	}
	rule, name := l.cfg.Match(method, path)
	if rule.Limit <= 0 || rule.Window <= 0 {
		return Decision{Allowed: true}
	}

	now := l.now()
	key := client + " " + name

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) > idleTTL {
		l.prune(now)
	}
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(rule, now)
		l.buckets[key] = b
	}
	allowed, remaining, wait := b.take(now)
	return Decision{Allowed: allowed, Limit: rule.Limit, Remaining: remaining, RetryAfter: wait}
}

func (l *Limiter) prune(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.seen) > idleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastPrune = now
}
