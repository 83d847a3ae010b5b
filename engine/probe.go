package engine

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	probeRetries = 10
	probeDelay   = 500 * time.Millisecond
)

// probeEndpoint dials the websocket endpoint and hangs up, retrying while
// the connection is refused.
func probeEndpoint(ctx context.Context, endpoint string, retryCount int) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parsing websocket endpoint: %w", err)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil && strings.Contains(err.Error(), "connection refused") && retryCount > 0 {
		select {
		case <-time.After(probeDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
		return probeEndpoint(ctx, endpoint, retryCount-1)
	}
	if err != nil {
		return fmt.Errorf("dialing %q: %w", u.Redacted(), err)
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	return conn.Close()
}
