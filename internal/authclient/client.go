package authclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow/internal/logger"
	"github.com/dtroode/taskflow/internal/model"
)

var _ model.Validator = (*Client)(nil)

// DefaultTimeout bounds the validate round trip when no timeout is
// configured.
const DefaultTimeout = 5 * time.Second

// Client validates bearer tokens by forwarding the Authorization header
// to the auth service. Every failure mode, including the auth service
// being unreachable, collapses into model.ErrUnauthorized: callers must
// not be able to tell a bad token from a dead dependency.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *logger.Logger
}

// New creates a validator client for the auth service at baseURL. A
// non-positive timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type validateResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Validate forwards the raw Authorization header to the auth service's
// validate endpoint. No retries: a timeout is a terminal unauthorized
// outcome for this request.
func (c *Client) Validate(ctx context.Context, authHeader string) (model.Identity, error) {
	if authHeader == "" {
		return model.Identity{}, model.ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/validate", nil)
	if err != nil {
		c.logger.Error("Auth client: failed to build validate request",
			"error", err.Error())
		return model.Identity{}, model.ErrUnauthorized
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Auth client: validate call failed",
			"error", err.Error())
		return model.Identity{}, model.ErrUnauthorized
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Identity{}, model.ErrUnauthorized
	}

	var body validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Error("Auth client: malformed validate response",
			"error", err.Error())
		return model.Identity{}, model.ErrUnauthorized
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		c.logger.Error("Auth client: bad user id in validate response",
			"error", err.Error())
		return model.Identity{}, model.ErrUnauthorized
	}

	return model.Identity{UserID: userID, Email: body.Email}, nil
}
