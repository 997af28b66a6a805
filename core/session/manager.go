package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/logger"
	"github.com/resumeforge/resumeforge-go/core/notify"
	"github.com/resumeforge/resumeforge-go/core/tokenstore"
	"github.com/resumeforge/resumeforge-go/core/validate"
)

// API is the slice of the HTTP client the manager drives. ExchangeToken
// persists the pair it returns; CurrentUser authenticates with the stored
// access token.
type API[U any] interface {
	ExchangeToken(ctx context.Context, username, password string) (tokenstore.TokenPair, error)
	CurrentUser(ctx context.Context) (U, error)
	Register(ctx context.Context, params RegisterParams) (U, error)
}

// Manager orchestrates the authentication lifecycle: restore-on-start,
// login, register, logout. State mutation is serialized by a mutex, but
// overlapping operations are not deduplicated: two concurrent logins race
// and the last one to resolve wins. That mirrors the behavior of the web
// client this SDK replaces.
type Manager[U any] struct {
	api    API[U]
	tokens tokenstore.Store

	notifier               notify.Notifier
	log                    *slog.Logger
	onVerificationRequired func(email string)

	mu     sync.Mutex
	user   *U
	status Status
	errMsg string
}

// Option configures the manager.
type Option func(*settings)

type settings struct {
	notifier               notify.Notifier
	log                    *slog.Logger
	onVerificationRequired func(email string)
}

// WithNotifier routes transient success/error notifications. Defaults to
// discarding them.
func WithNotifier(n notify.Notifier) Option {
	return func(s *settings) {
		s.notifier = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithVerificationRequiredHook registers the callback fired after a
// successful registration, carrying the email address that must be
// verified. The application navigates to its verification flow here.
func WithVerificationRequiredHook(fn func(email string)) Option {
	return func(s *settings) {
		s.onVerificationRequired = fn
	}
}

// NewManager creates a session manager in the idle state.
func NewManager[U any](api API[U], tokens tokenstore.Store, opts ...Option) *Manager[U] {
	s := &settings{
		notifier: notify.Nop{},
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	return &Manager[U]{
		api:                    api,
		tokens:                 tokens,
		notifier:               s.notifier,
		log:                    s.log,
		onVerificationRequired: s.onVerificationRequired,
		status:                 StatusIdle,
	}
}

// Snapshot returns the current session state.
func (m *Manager[U]) Snapshot() Snapshot[U] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot[U]{User: m.user, Status: m.status, Error: m.errMsg}
}

// Restore initializes the session from persisted tokens. With no token
// stored it transitions straight to unauthenticated without a network call.
// With a token it fetches the current user; an invalid or expired token
// clears the store and leaves the session failed with "Session expired".
func (m *Manager[U]) Restore(ctx context.Context) error {
	if _, ok := m.tokens.Load(); !ok {
		m.setUnauthenticated()
		return nil
	}

	m.setLoading()

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.Warn("failed to restore session", logger.Error(err))
		if clearErr := m.tokens.Clear(); clearErr != nil {
			m.log.Warn("failed to clear tokens", logger.Error(clearErr))
		}
		m.setFailed("Session expired")
		return errors.Join(ErrSessionExpired, err)
	}

	m.setAuthenticated(&user)
	return nil
}

// Login exchanges credentials for tokens and loads the current user. The
// token exchange strictly precedes the user fetch, which strictly precedes
// the authenticated transition. On failure the session is failed with the
// server's message (or a generic fallback) and the error is returned so the
// caller can react without relying on shared state.
func (m *Manager[U]) Login(ctx context.Context, username, password string) error {
	m.setLoading()

	if _, err := m.api.ExchangeToken(ctx, username, password); err != nil {
		return m.fail(err, "Login failed")
	}

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		return m.fail(err, "Login failed")
	}

	m.setAuthenticated(&user)
	m.notifier.Success("Logged in successfully")
	return nil
}

// Register creates an account. The session deliberately does NOT become
// authenticated on success: email verification is required first, so the
// state transitions to unauthenticated and the verification hook fires with
// the registered email address.
func (m *Manager[U]) Register(ctx context.Context, params RegisterParams) error {
	if err := validate.Struct(params); err != nil {
		m.setFailed(err.Error())
		m.notifier.Error(err.Error())
		return errors.Join(ErrValidation, err)
	}

	m.setLoading()

	if _, err := m.api.Register(ctx, params); err != nil {
		return m.fail(err, "Registration failed")
	}

	m.setUnauthenticated()
	m.notifier.Success("Registration successful! Please check your email to verify your account.")
	if m.onVerificationRequired != nil {
		m.onVerificationRequired(params.Email)
	}
	return nil
}

// Logout clears stored tokens and resets the session. This transition
// cannot fail: a store error is logged and the state still becomes
// unauthenticated.
func (m *Manager[U]) Logout() {
	if err := m.tokens.Clear(); err != nil {
		m.log.Warn("failed to clear tokens on logout", logger.Error(err))
	}
	m.setUnauthenticated()
	m.notifier.Success("Logged out successfully")
}

// ClearError acknowledges a failed state without touching tokens or
// triggering I/O. From any other state it is a no-op.
func (m *Manager[U]) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == StatusFailed {
		m.status = StatusUnauthenticated
		m.errMsg = ""
	}
}

// fail records the failure with the server-provided message when present
// and re-raises the original error.
func (m *Manager[U]) fail(err error, fallback string) error {
	msg := apiclient.Message(err, fallback)
	m.setFailed(msg)
	m.notifier.Error(msg)
	return err
}

func (m *Manager[U]) setLoading() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = StatusLoading
	m.errMsg = ""
}

func (m *Manager[U]) setAuthenticated(user *U) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.status = StatusAuthenticated
	m.errMsg = ""
}

func (m *Manager[U]) setUnauthenticated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.status = StatusUnauthenticated
	m.errMsg = ""
}

func (m *Manager[U]) setFailed(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.status = StatusFailed
	m.errMsg = msg
}
