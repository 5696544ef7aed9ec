package rubix

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
)

// Option configures client settings using the functional options pattern.
type Option func(*settings)

type settings struct {
	logger     *zap.Logger
	httpClient *http.Client
	timeout    time.Duration
	retryDelay time.Duration
}

// WithLogger sets a custom logger for the client.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithHTTPClient sets a custom HTTP client. Its Timeout wins over WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithTimeout bounds every single request to the node.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithRetryDelay sets the pause before the single retry of a failed request.
func WithRetryDelay(d time.Duration) Option {
	return func(s *settings) { s.retryDelay = d }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:     zap.NewNop(),
		timeout:    defaultTimeout,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: s.timeout}
	}
	return s
}
