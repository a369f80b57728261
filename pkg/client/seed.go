package client

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/noah-isme/formation-api/internal/dto"
)

// User-facing messages produced by SeedTestAccounts.
const (
	MessageBackendUnreachable = "Cannot connect to the backend server. Please make sure it is running."
	MessageSeedFailed         = "Failed to create test accounts"
)

// SeedError carries the user-facing message of a failed seeding call.
type SeedError struct {
	Message string
	Err     error
}

func (e *SeedError) Error() string { return e.Message }

func (e *SeedError) Unwrap() error { return e.Err }

// SeedTestAccounts provisions the known test accounts on the server. The
// notifier receives the outcome either way.
func (c *Client) SeedTestAccounts(ctx context.Context) ([]dto.SeedAccount, error) {
	var headers http.Header
	if c.seedToken != "" {
		headers = http.Header{"X-Seed-Token": []string{c.seedToken}}
	}

	var response dto.SeedResponse
	err := c.do(ctx, http.MethodPost, "/auth/seed-test-accounts", nil, nil, &response, headers)
	if err != nil {
		seedErr := &SeedError{Message: seedErrorMessage(err), Err: err}
		c.logger.Error().Err(err).Msg("failed to seed test accounts")
		c.notifier.Error(seedErr.Message)
		return nil, seedErr
	}

	c.notifier.Success(seedSuccessMessage(response.Accounts))
	return response.Accounts, nil
}

func seedErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return MessageSeedFailed
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return MessageBackendUnreachable
	}
	return MessageSeedFailed
}

func seedSuccessMessage(accounts []dto.SeedAccount) string {
	message := "Test accounts created"
	for _, account := range accounts {
		message += "\n" + account.Role + ": " + account.Email + " / " + account.Password
	}
	return message
}
