// Package delivery defines the contract every transport (HTTP today)
// fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a serving surface of the application.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
