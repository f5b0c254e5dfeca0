package llm

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

const retryBaseDelay = 300 * time.Millisecond

type retryingClient struct {
	base Client
}

// WithRetry wraps a client so that a single transient transport failure is
// retried after a short delay. The analysis pipeline itself never retries; a
// second failure surfaces to the caller.
func WithRetry(base Client) Client {
	if base == nil {
		return nil
	}
	return retryingClient{base: base}
}

func (r retryingClient) Generate(ctx context.Context, prompt string) (string, error) {
	reply, err := r.base.Generate(ctx, prompt)
	if err == nil || !shouldRetry(err) {
		return reply, err
	}

	log.Printf("llm retry attempt=1 error=%v", err)
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return r.base.Generate(ctx, prompt)
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "unavailable") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
