// Package delivery defines the transports that expose the application.
package delivery

import "context"

// Delivery is a serving transport started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
