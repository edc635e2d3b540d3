// internal/chatapi/client.go
package chatapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	commonhttp "concierge-workers/internal/common/http"
	"concierge-workers/internal/common/logger"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var (
	ErrBackendTimeout = errors.New("CHAT_BACKEND_TIMEOUT")
	ErrBackendFailed  = errors.New("CHAT_BACKEND_FAILED")
)

const (
	chatPath   = "/chat"
	healthPath = "/health"

	healthTimeout = 5 * time.Second
	maxErrorBody  = 4 << 10
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Message             string    `json:"message"`
	ConversationHistory []Message `json:"conversationHistory"`
	UserID              string    `json:"userId,omitempty"`
}

type Response struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	// RateLimit caps outbound requests per second. Zero means unlimited.
	RateLimit float64
	Burst     int
}

// Client talks to the conversational backend that answers free-form
// questions the intent engine cannot act on.
type Client struct {
	http       *commonhttp.Client
	maxRetries int
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     logger.Logger
}

func NewClient(cfg Config, log logger.Logger) *Client {
	hc := commonhttp.NewClient(cfg.BaseURL, cfg.Timeout)
	if cfg.APIKey != "" {
		hc.SetHeader("X-API-Key", cfg.APIKey)
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	l := log.WithFields(map[string]interface{}{"component": "chatapi"})
	return &Client{
		http:       hc,
		maxRetries: cfg.MaxRetries,
		limiter:    rate.NewLimiter(limit, burst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "chat-backend",
			MaxRequests: 3,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				l.Warn("circuit breaker state changed", map[string]interface{}{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				})
			},
		}),
		logger: l,
	}
}

// rejected carries a failure that says nothing about backend health, such
// as a 4xx, through the breaker without counting against it.
type rejected struct {
	err error
}

// SendMessage posts one turn of the conversation. Transport errors and 5xx
// responses are retried with exponential backoff; 4xx responses are not.
// Repeated backend failures open a circuit breaker that fails calls fast
// until the backend recovers.
func (c *Client) SendMessage(ctx context.Context, req Request) (*Response, error) {
	if req.ConversationHistory == nil {
		req.ConversationHistory = []Message{}
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		out, retryable, err := c.sendWithRetries(ctx, req)
		if err != nil && !retryable {
			return rejected{err: err}, nil
		}
		return out, err
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %v", ErrBackendFailed, err)
	case err != nil:
		return nil, err
	}
	if r, ok := result.(rejected); ok {
		return nil, r.err
	}
	return result.(*Response), nil
}

// sendWithRetries reports whether the final error reflects backend health.
func (c *Client) sendWithRetries(ctx context.Context, req Request) (*Response, bool, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, true, ErrBackendTimeout
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, true, ErrBackendTimeout
		}

		out, retry, err := c.send(ctx, req)
		if err == nil {
			return out, false, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, true, ErrBackendTimeout
		}
		if !retry {
			return nil, false, lastErr
		}
		c.logger.Warn("chat request failed, retrying", map[string]interface{}{
			"attempt": attempt + 1,
			"error":   err.Error(),
		})
	}

	return nil, true, lastErr
}

func (c *Client) send(ctx context.Context, req Request) (*Response, bool, error) {
	resp, err := c.http.PostJSON(ctx, chatPath, req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: no response from server: %v", ErrBackendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg := errorMessage(resp.Body)
		return nil, resp.StatusCode >= 500, fmt.Errorf("%w: status %d: %s", ErrBackendFailed, resp.StatusCode, msg)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, false, fmt.Errorf("%w: decode response: %v", ErrBackendFailed, err)
	}
	return &out, false, nil
}

// errorMessage pulls {"error": "..."} out of a failed response.
func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	if s := strings.TrimSpace(string(raw)); s != "" {
		return s
	}
	return "failed to get response from chat backend"
}

// HealthCheck reports whether the backend answers GET /health with 200.
func (c *Client) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	resp, err := c.http.Get(ctx, healthPath)
	if err != nil {
		c.logger.Warn("chat backend health check failed", map[string]interface{}{"error": err.Error()})
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
