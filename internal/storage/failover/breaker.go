package failover

import (
	"log/slog"
	"sync/atomic"
)

// Breaker decides whether the remote backend may be used. It flips in one
// direction only: once ForceLocal is called the process stays on the local
// backend until restart. There is no re-probe and no reset.
type Breaker struct {
	logger           *slog.Logger
	remoteConfigured bool
	forcedLocal      atomic.Bool
}

// NewBreaker creates a breaker. A deployment without usable remote
// credentials passes remoteConfigured=false, making the remote ineligible
// from the first call.
func NewBreaker(remoteConfigured bool, logger *slog.Logger) *Breaker {
	return &Breaker{
		logger:           logger,
		remoteConfigured: remoteConfigured,
	}
}

// RemoteEligible reports whether an operation should try the remote backend
func (b *Breaker) RemoteEligible() bool {
	return b.remoteConfigured && !b.forcedLocal.Load()
}

// ForceLocal trips the breaker. Idempotent; only the first call logs.
func (b *Breaker) ForceLocal() {
	if b.forcedLocal.Swap(true) {
		return
	}
	b.logger.Warn("remote backend unavailable, switching to local storage for the rest of this process")
}
