package privy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nusakarya/contexts/identity-access/identity-service/ports"
)

// Client implements ports.TokenVerifier against the Privy REST API.
// Requests carry the app id/secret as basic auth plus the privy-app-id
// header. No retry is performed; a transient provider failure surfaces to
// the caller as a verification error.
type Client struct {
	baseURL    string
	appID      string
	appSecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, appID string, appSecret string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		appID:     appID,
		appSecret: appSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

type verifyTokenResponse struct {
	UserID string `json:"user_id"`
}

type userResponse struct {
	ID     string `json:"id"`
	Wallet *struct {
		Address string `json:"address"`
	} `json:"wallet"`
	Email *struct {
		Address string `json:"address"`
	} `json:"email"`
}

func (c *Client) VerifyToken(ctx context.Context, token string) (ports.Claims, error) {
	payload, err := json.Marshal(verifyTokenRequest{Token: token})
	if err != nil {
		return ports.Claims{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/v1/tokens/verify",
		bytes.NewReader(payload),
	)
	if err != nil {
		return ports.Claims{}, err
	}
	c.decorate(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Claims{}, fmt.Errorf("privy verify token: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("privy rejected token",
			"event", "privy_token_rejected",
			"module", "identity-access/identity-service",
			"layer", "adapter",
			"status", resp.StatusCode,
		)
		return ports.Claims{}, fmt.Errorf("privy verify token: status %d", resp.StatusCode)
	}

	var body verifyTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Claims{}, fmt.Errorf("privy verify token: decode response: %w", err)
	}
	if strings.TrimSpace(body.UserID) == "" {
		return ports.Claims{}, fmt.Errorf("privy verify token: empty user id")
	}
	return ports.Claims{PrivyID: body.UserID}, nil
}

func (c *Client) FetchProfile(ctx context.Context, privyID string) (ports.Profile, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/api/v1/users/"+privyID,
		nil,
	)
	if err != nil {
		return ports.Profile{}, err
	}
	c.decorate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Profile{}, fmt.Errorf("privy fetch user: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return ports.Profile{}, fmt.Errorf("privy fetch user: status %d", resp.StatusCode)
	}

	var body userResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Profile{}, fmt.Errorf("privy fetch user: decode response: %w", err)
	}

	profile := ports.Profile{}
	if body.Wallet != nil && strings.TrimSpace(body.Wallet.Address) != "" {
		address := body.Wallet.Address
		profile.WalletAddress = &address
	}
	if body.Email != nil && strings.TrimSpace(body.Email.Address) != "" {
		address := body.Email.Address
		profile.Email = &address
	}
	return profile, nil
}

func (c *Client) decorate(req *http.Request) {
	req.SetBasicAuth(c.appID, c.appSecret)
	req.Header.Set("privy-app-id", c.appID)
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
