package ports

import (
	"context"
)

// Client is a user of the Identity service receiving deliveries.
// Optional attributes are nil when the service does not report them.
type Client struct {
	ID        string
	Name      *string
	Email     *string
	Address   *string
	Phone     *string
	Latitude  *float64
	Longitude *float64
}

// IdentityGateway resolves clients from the Identity service.
type IdentityGateway interface {
	// UserByID returns (nil, nil) for an unknown user.
	UserByID(ctx context.Context, id string) (*Client, error)

	// UsersByIDs resolves each distinct id independently. Ids that are unknown
	// or fail to resolve are left out of the result.
	UsersByIDs(ctx context.Context, ids []string) (map[string]Client, error)
}
