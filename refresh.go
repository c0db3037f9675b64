package sdk

import (
	"context"
	"sync"
)

// session owns the in-memory access token. The persisted TokenStore is a
// write-through mirror; refreshes update both, refresh failures clear both.
type session struct {
	mu       sync.Mutex
	token    string
	inflight *refreshResult

	store     TokenStore
	identity  IdentityProvider
	exchange  func(ctx context.Context, identityToken string) (string, error)
	telemetry TelemetryHooks
}

type refreshResult struct {
	done  chan struct{}
	token string
	err   error
}

func (s *session) current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// refresh mints a fresh identity token and exchanges it for a new access
// token. Concurrent callers share a single in-flight refresh; a caller whose
// observed token is already stale relative to the current one adopts the
// current token without triggering another exchange.
func (s *session) refresh(ctx context.Context, stale string) (string, error) {
	s.mu.Lock()
	if s.token != "" && s.token != stale {
		token := s.token
		s.mu.Unlock()
		return token, nil
	}
	if s.inflight != nil {
		res := s.inflight
		s.mu.Unlock()
		select {
		case <-res.done:
			return res.token, res.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	res := &refreshResult{done: make(chan struct{})}
	s.inflight = res
	s.mu.Unlock()

	token, err := s.mint(ctx)

	s.mu.Lock()
	s.inflight = nil
	if err != nil {
		s.token = ""
		if s.store != nil {
			if clearErr := s.store.Clear(); clearErr != nil {
				s.telemetry.log(ctx, LogLevelError, "token_store_clear_failed", map[string]any{
					"error": clearErr.Error(),
				})
			}
		}
		res.err = &SessionExpiredError{Cause: err}
	} else {
		s.token = token
		res.token = token
		if s.store != nil {
			if saveErr := s.store.Save(token); saveErr != nil {
				s.telemetry.log(ctx, LogLevelError, "token_store_save_failed", map[string]any{
					"error": saveErr.Error(),
				})
			}
		}
	}
	s.mu.Unlock()
	close(res.done)
	return res.token, res.err
}

func (s *session) mint(ctx context.Context) (string, error) {
	if s.identity == nil {
		return "", ErrNoSession
	}
	identityToken, err := s.identity.MintIdentityToken(ctx)
	if err != nil {
		return "", err
	}
	return s.exchange(ctx, identityToken)
}

// clear drops the in-memory credential and its persisted mirror.
func (s *session) clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	store := s.store
	s.mu.Unlock()
	if store != nil {
		if err := store.Clear(); err != nil {
			s.telemetry.log(ctx, LogLevelError, "token_store_clear_failed", map[string]any{
				"error": err.Error(),
			})
		}
	}
}
