package integration

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"logistics/internal/core/ports"
)

// userFoundMessage is what the Identity service answers for a found user when
// it does not set the success flag.
const userFoundMessage = "Usuario obtenido exitosamente"

type userDTO struct {
	ID        flexString `json:"id"`
	Name      *string    `json:"name"`
	Email     *string    `json:"email"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	Latitude  flexFloat  `json:"latitude"`
	Longitude flexFloat  `json:"longitude"`
}

// IdentityClient implements ports.IdentityGateway over the Identity service API.
type IdentityClient struct {
	client
}

var _ ports.IdentityGateway = (*IdentityClient)(nil)

func NewIdentityClient(cfg Config, logger *slog.Logger) *IdentityClient {
	return &IdentityClient{client: newClient("identity", cfg, logger)}
}

// UserByID calls GET /auth/user/{id}. It returns (nil, nil) when the user is
// unknown or the response does not report success.
func (c *IdentityClient) UserByID(ctx context.Context, id string) (*ports.Client, error) {
	var body envelope[*userDTO]
	status, err := c.getJSON(ctx, "user by id", "/auth/user/"+url.PathEscape(id), nil, &body)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		return nil, nil
	case status != http.StatusOK:
		c.logger.WarnContext(ctx, "unexpected identity response", "status", status, "user_id", id)
		return nil, nil
	case body.Data == nil:
		return nil, nil
	case !body.Success && body.Message != userFoundMessage:
		return nil, nil
	}

	u := body.Data
	clientID := string(u.ID)
	if clientID == "" {
		clientID = id
	}
	return &ports.Client{
		ID:        clientID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Phone:     u.Phone,
		Latitude:  u.Latitude.ptr(),
		Longitude: u.Longitude.ptr(),
	}, nil
}

// UsersByIDs resolves every distinct id one at a time. Failures are logged and
// the id is left out; the returned error is always nil unless ctx is done.
func (c *IdentityClient) UsersByIDs(ctx context.Context, ids []string) (map[string]ports.Client, error) {
	users := make(map[string]ports.Client, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if err := ctx.Err(); err != nil {
			return users, err
		}

		user, err := c.UserByID(ctx, id)
		if err != nil {
			c.logger.WarnContext(ctx, "failed to resolve user", "user_id", id, "error", err)
			continue
		}
		if user != nil {
			users[id] = *user
		}
	}

	return users, nil
}
