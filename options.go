package sdk

import (
	"net/http"
	"strings"
	"time"

	"github.com/agentdesk/agentdesk-go/headers"
)

// RequestOption customizes a single outgoing request (headers, request IDs, timeout).
type RequestOption func(*callOptions)

type callOptions struct {
	headers http.Header
	timeout *time.Duration
}

// WithRequestID sets the X-AgentDesk-Request-Id header for the request.
func WithRequestID(requestID string) RequestOption {
	return func(opts *callOptions) {
		clean := strings.TrimSpace(requestID)
		if clean == "" {
			return
		}
		if opts.headers == nil {
			opts.headers = make(http.Header)
		}
		opts.headers.Set(headers.RequestID, clean)
	}
}

// WithHeader attaches an arbitrary header to the underlying HTTP request.
func WithHeader(key, value string) RequestOption {
	return func(opts *callOptions) {
		if strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
			return
		}
		if opts.headers == nil {
			opts.headers = make(http.Header)
		}
		opts.headers.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

// WithHeaders attaches multiple headers to the underlying HTTP request.
func WithHeaders(hdrs map[string]string) RequestOption {
	return func(opts *callOptions) {
		if len(hdrs) == 0 {
			return
		}
		if opts.headers == nil {
			opts.headers = make(http.Header)
		}
		for key, value := range hdrs {
			k := strings.TrimSpace(key)
			v := strings.TrimSpace(value)
			if k == "" || v == "" {
				continue
			}
			opts.headers.Add(k, v)
		}
	}
}

// WithTimeout bounds this call (including any refresh and retry) with a deadline.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(opts *callOptions) {
		opts.timeout = &timeout
	}
}

func buildCallOptions(options []RequestOption) callOptions {
	cfg := callOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

func applyCallHeaders(req *http.Request, opts callOptions) {
	for key, values := range opts.headers {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
}
