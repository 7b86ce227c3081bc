// Package delivery defines the contract every inbound transport fulfills.
package delivery

import "context"

// Delivery is a transport that serves requests until its context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
