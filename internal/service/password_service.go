package service

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxSuggestionBytes = 256

// PasswordSuggester fetches a random password from a third-party
// generator. It is a convenience feature and fire-and-forget: any
// failure is logged and yields an empty suggestion, never an error.
type PasswordSuggester interface {
	Suggest(ctx context.Context) string
}

type passwordSuggester struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewPasswordSuggester builds a suggester against the configured
// generator URL. An empty URL disables the feature.
func NewPasswordSuggester(url string, timeout time.Duration, logger *zap.Logger) PasswordSuggester {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &passwordSuggester{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (s *passwordSuggester) Suggest(ctx context.Context) string {
	if s.url == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		s.logger.Warn("password generator request build failed", zap.Error(err))
		return ""
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("password generator unreachable", zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("password generator returned non-OK status", zap.Int("status", resp.StatusCode))
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSuggestionBytes))
	if err != nil {
		s.logger.Warn("password generator body read failed", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(string(body))
}
