// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application, such as the HTTP server.
// Serve blocks until the surface stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
