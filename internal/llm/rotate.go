package llm

import (
	"context"
	"fmt"
	"log/slog"

	app_errors "portfolio/backend/internal/errors"
)

// RotatingClient wraps a Provider with bounded credential rotation. A single
// quota-limited or revoked key becomes a transient, self-healing condition
// instead of an outage: the client walks the pool until a credential works,
// making at most one attempt per credential.
type RotatingClient struct {
	provider Provider
	pool     *Pool
	classify Classifier
}

// NewRotatingClient builds the rotation wrapper. A nil classifier selects
// DefaultClassifier.
func NewRotatingClient(provider Provider, pool *Pool, classify Classifier) *RotatingClient {
	if classify == nil {
		classify = DefaultClassifier
	}
	return &RotatingClient{provider: provider, pool: pool, classify: classify}
}

// Complete tries the completion with each credential in rotation order.
//
// Rotatable failures advance the shared pool cursor and move on to the next
// credential; a non-rotatable failure stops immediately. The loop is bounded
// by the pool size, so a request makes at most len(pool) upstream attempts.
// Per-attempt failure detail (credential label, status, body) is logged here
// and never propagated: callers only see the sentinel errors.
func (c *RotatingClient) Complete(ctx context.Context, req *CompletionRequest) (*Completion, error) {
	creds := c.pool.Snapshot()
	if len(creds) == 0 {
		return nil, fmt.Errorf("%w: no credentials configured", app_errors.ErrProviderExhausted)
	}

	for attempt, cred := range creds {
		completion, err := c.provider.Complete(ctx, cred, req)
		if err == nil {
			return completion, nil
		}

		if c.classify(err) == NonRotatable {
			slog.Warn("Upstream rejected request, not rotating",
				"credential", cred.Label, "attempt", attempt+1, "error", err)
			return nil, fmt.Errorf("%w: attempt %d with %s: %v",
				app_errors.ErrProviderRejected, attempt+1, cred.Label, err)
		}

		slog.Warn("Upstream attempt failed, rotating credential",
			"credential", cred.Label, "attempt", attempt+1, "remaining", len(creds)-attempt-1, "error", err)
		c.pool.Advance()
	}

	slog.Error("Every credential in the pool failed", "attempts", len(creds))
	return nil, fmt.Errorf("%w: %d attempts", app_errors.ErrProviderExhausted, len(creds))
}
