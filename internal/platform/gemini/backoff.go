package gemini

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/phrazzld/codelens/internal/config"
)

// Retry defaults, matching the documented configuration defaults.
const (
	DefaultMaxAttempts = 5
	DefaultBaseDelay   = time.Second
	DefaultMaxJitter   = time.Second
)

// RetryPolicy bounds how rate-limited calls are retried.
type RetryPolicy struct {
	// MaxAttempts is the total number of requests, including the first.
	MaxAttempts int
	// BaseDelay is multiplied by 2^attempt to get the backoff.
	BaseDelay time.Duration
	// MaxJitter is the exclusive upper bound of the random delay added.
	MaxJitter time.Duration
}

// DefaultRetryPolicy returns five attempts with 1s base delay and up to 1s jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		MaxJitter:   DefaultMaxJitter,
	}
}

// RetryPolicyFromConfig builds a policy from cfg, substituting defaults for
// out-of-range values.
func RetryPolicyFromConfig(cfg config.LLMConfig) RetryPolicy {
	policy := DefaultRetryPolicy()
	if cfg.MaxAttempts >= 1 {
		policy.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.BaseDelayMS >= 1 {
		policy.BaseDelay = time.Duration(cfg.BaseDelayMS) * time.Millisecond
	}
	if cfg.MaxJitterMS >= 0 {
		policy.MaxJitter = time.Duration(cfg.MaxJitterMS) * time.Millisecond
	}
	return policy
}

// Delay returns the wait before the attempt following attempt (1-based):
// 2^attempt * BaseDelay + jitter(MaxJitter).
func (p RetryPolicy) Delay(attempt int, jitter JitterFunc) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	backoff := p.BaseDelay * time.Duration(int64(1)<<uint(attempt))
	if jitter == nil {
		jitter = uniformJitter
	}
	return backoff + jitter(p.MaxJitter)
}

// JitterFunc returns a random duration in [0, max).
type JitterFunc func(max time.Duration) time.Duration

func uniformJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(max)))
}

// Sleeper waits for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
