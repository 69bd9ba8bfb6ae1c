package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Accepted steps only need to survive the validity window (current step plus
// one step of skew either side); two minutes covers it with margin.
const replayTTL = 2 * time.Minute

// ReplayGuard records the TOTP time steps already consumed per user so a
// captured code cannot be replayed within its window.
// Key format: totp:step:<user_id>:<step>
type ReplayGuard struct {
	client *redis.Client
}

// NewReplayGuard creates a ReplayGuard wrapping the given Redis client.
func NewReplayGuard(client *redis.Client) *ReplayGuard {
	return &ReplayGuard{client: client}
}

// Seen reports whether a code for this time step was already accepted.
func (g *ReplayGuard) Seen(ctx context.Context, userID string, step uint64) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(userID, step)).Result()
	if err != nil {
		return false, fmt.Errorf("replay check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a code for this time step was accepted (expires after replayTTL).
func (g *ReplayGuard) Mark(ctx context.Context, userID string, step uint64) error {
	return g.client.Set(ctx, g.key(userID, step), "1", replayTTL).Err()
}

func (g *ReplayGuard) key(userID string, step uint64) string {
	return fmt.Sprintf("totp:step:%s:%d", userID, step)
}
