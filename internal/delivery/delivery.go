// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker loop) managed by fx.
type Delivery interface {
	Serve(ctx context.Context) error
}
