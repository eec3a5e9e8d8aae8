package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/jala-youth/jala-web/internal/store"
)

const statsPath = "/api/admin/stats"

// Session is the admin session gate: it owns the bearer token, attaches it
// to every admin call and treats a 401 as the end of the session.
type Session struct {
	client *Client
	tokens store.TokenStore

	mu    sync.Mutex
	hooks []func()
}

// NewSession creates a gate persisting its token in tokens.
func NewSession(client *Client, tokens store.TokenStore) *Session {
	return &Session{client: client, tokens: tokens}
}

// OnDeauthenticate registers fn to run after every logout or expiry, so that
// view-models can drop their cached collections.
func (s *Session) OnDeauthenticate(fn func()) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

// Login probes the stats endpoint with password as the bearer token. A 200
// answer means the token is accepted and it is persisted. Any failure drops
// the previously stored token.
func (s *Session) Login(ctx context.Context, password string) Result[struct{}] {
	res := s.login(ctx, password)
	if !res.OK {
		if err := s.tokens.Clear(ctx); err != nil {
			s.client.log.Error().Err(err).Msg("Failed to clear admin token")
		}
	}
	return res
}

func (s *Session) login(ctx context.Context, password string) Result[struct{}] {
	if password == "" {
		gerr := validationError(map[string]string{"password": MsgPasswordRequired})
		gerr.Message = MsgPasswordRequired
		return Fail[struct{}](gerr)
	}

	const op = "admin_login"
	start := time.Now()

	rep, err := s.client.send(ctx, call{op: op, method: http.MethodGet, path: statsPath, token: password})
	if err != nil {
		gerr := &Error{Kind: KindConnectivity, Message: MsgLoginConnection, Err: err}
		s.client.observe(op, start, gerr)
		return Fail[struct{}](gerr)
	}
	if rep.status != http.StatusOK {
		gerr := &Error{Kind: KindInvalidCredentials, Message: MsgInvalidCredentials, Status: rep.status}
		s.client.log.Info().Int("status", rep.status).Msg("Admin login rejected")
		s.client.observe(op, start, gerr)
		return Fail[struct{}](gerr)
	}

	if err := s.tokens.Set(ctx, password); err != nil {
		gerr := &Error{Kind: KindRequest, Message: MsgRequestFailed, Err: err}
		s.client.log.Error().Err(err).Msg("Failed to persist admin token")
		s.client.observe(op, start, gerr)
		return Fail[struct{}](gerr)
	}

	s.client.log.Info().Msg("Admin authenticated")
	s.client.observe(op, start, nil)
	return Ok(struct{}{})
}

// IsAuthenticated reports whether a token is currently stored. Expiry is
// only discovered by the next admin call.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	token, err := s.tokens.Get(ctx)
	return err == nil && token != ""
}

// Resume reports whether a token from an earlier run is available. The token
// is not re-verified here; a stale one surfaces as a 401 on the next call.
func (s *Session) Resume(ctx context.Context) bool {
	ok := s.IsAuthenticated(ctx)
	if ok {
		s.client.log.Debug().Msg("Resuming admin session")
	}
	return ok
}

// Logout clears the token and runs the deauthentication hooks. It is safe to
// call any number of times.
func (s *Session) Logout(ctx context.Context) error {
	err := s.tokens.Clear(ctx)
	if err != nil {
		s.client.log.Error().Err(err).Msg("Failed to clear admin token")
	}
	s.runHooks()
	return err
}

func (s *Session) runHooks() {
	s.mu.Lock()
	hooks := append([]func(){}, s.hooks...)
	s.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// AuthedRequest performs an admin call and decodes a 2xx JSON body into out
// (which may be nil). A 401 logs the session out before failing with
// KindSessionExpired.
func (s *Session) AuthedRequest(ctx context.Context, op, method, path string, out interface{}) *Error {
	start := time.Now()
	gerr := s.authed(ctx, op, method, path, out)
	s.client.observe(op, start, gerr)
	return gerr
}

func (s *Session) authed(ctx context.Context, op, method, path string, out interface{}) *Error {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoToken) {
			s.runHooks()
			return &Error{Kind: KindSessionExpired, Message: MsgSessionExpired}
		}
		s.client.log.Error().Err(err).Msg("Failed to load admin token")
		return &Error{Kind: KindRequest, Message: MsgRequestFailed, Err: err}
	}

	rep, err := s.client.send(ctx, call{op: op, method: method, path: path, token: token})
	if err != nil {
		return &Error{Kind: KindConnectivity, Message: MsgUnreachable, Err: err}
	}

	if rep.status == http.StatusUnauthorized {
		s.client.log.Info().Str("op", op).Msg("Admin session expired")
		_ = s.Logout(ctx)
		return &Error{Kind: KindSessionExpired, Message: MsgSessionExpired, Status: rep.status}
	}
	if !rep.ok() {
		return &Error{Kind: KindRequest, Message: MsgRequestFailed, Status: rep.status, Detail: rep.serverMessage()}
	}

	if out != nil && len(rep.body) > 0 {
		if err := json.Unmarshal(rep.body, out); err != nil {
			s.client.log.Warn().Err(err).Str("op", op).Msg("Malformed API response")
			return &Error{Kind: KindRequest, Message: MsgRequestFailed, Status: rep.status, Err: err}
		}
	}
	return nil
}
