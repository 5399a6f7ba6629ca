package password

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrTooManyAttempts is returned once the attempt window is exhausted.
var ErrTooManyAttempts = errors.New("too many login attempts")

const attemptKey = "rl:login:owner"

// Gate verifies the owner PIN before the management surface opens. The PIN is
// checked against an argon2id PHC hash; a plaintext PIN may be configured for
// local development only. Attempts are throttled through Redis when one is
// configured, fail-open otherwise.
//
// This gate restricts a single-operator local surface; it is not a substitute
// for a server-side trust boundary.
type Gate struct {
	pinHash  string
	pinPlain string
	rdb      *redis.Client
	max      int
	window   time.Duration
	log      *zap.Logger
}

func NewGate(pinHash, pinPlain string, rdb *redis.Client, maxAttempts int, window time.Duration, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{
		pinHash:  pinHash,
		pinPlain: pinPlain,
		rdb:      rdb,
		max:      maxAttempts,
		window:   window,
		log:      log.Named("gate"),
	}
}

// Verify trims and checks the entered PIN. It returns ErrTooManyAttempts when
// the window is exhausted, (false, nil) on a wrong PIN, and (true, nil) on
// success.
func (g *Gate) Verify(ctx context.Context, pin string) (bool, error) {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return false, nil
	}

	if err := g.throttle(ctx); err != nil {
		return false, err
	}

	if g.pinHash != "" {
		ok, err := Verify(pin, g.pinHash)
		if err != nil {
			return false, err
		}
		return ok, nil
	}
	if g.pinPlain != "" {
		ok := subtle.ConstantTimeCompare([]byte(pin), []byte(g.pinPlain)) == 1
		return ok, nil
	}

	return false, errors.New("no owner PIN configured")
}

// throttle counts attempts in Redis. Fail-open if Redis is absent or down.
func (g *Gate) throttle(ctx context.Context) error {
	if g.rdb == nil || g.max <= 0 {
		return nil
	}

	n, err := g.rdb.Incr(ctx, attemptKey).Result()
	if err != nil {
		g.log.Warn("attempt limiter unavailable", zap.Error(err))
		return nil
	}
	if n == 1 {
		_ = g.rdb.Expire(ctx, attemptKey, g.window).Err()
	}
	if n > int64(g.max) {
		return ErrTooManyAttempts
	}
	return nil
}
