package resumeforge

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/cache"
	"github.com/resumeforge/resumeforge-go/core/notify"
	"github.com/resumeforge/resumeforge-go/core/session"
	"github.com/resumeforge/resumeforge-go/core/tokenstore"
)

// Config holds client configuration loaded from the environment via
// config.Load.
type Config struct {
	API apiclient.Config

	// AppBaseURL is the public web application origin, used to build
	// shareable links such as referral invitations.
	AppBaseURL string `env:"RESUMEFORGE_APP_BASE_URL" envDefault:"https://resumeforge.io"`
}

// Staleness windows per resource. Within the window a cached value is served
// without a network call; outside it the cached value is still served while
// a background refetch refreshes the entry.
const (
	staleDefault   = 5 * time.Minute
	staleTemplates = 10 * time.Minute
	staleStats     = 10 * time.Minute
	stalePlans     = 10 * time.Minute
	staleSynonyms  = 30 * time.Minute
)

// Client is the ResumeForge API client. Resource operations are grouped
// into services; authentication state lives on Auth.
type Client struct {
	api        *apiclient.Client
	data       *cache.Store
	notifier   notify.Notifier
	appBaseURL string

	// Auth drives the login/register/logout lifecycle and exposes the
	// current session snapshot.
	Auth *session.Manager[User]

	Users         *UsersService
	Resumes       *ResumesService
	Templates     *TemplatesService
	ATS           *ATSService
	Subscriptions *SubscriptionsService
	Referrals     *ReferralsService
	Contact       *ContactService
	Passwords     *PasswordsService
	Verification  *VerificationService
}

// Option configures the client.
type Option func(*options)

type options struct {
	tokens                 tokenstore.Store
	storage                cache.Storage
	httpClient             *http.Client
	log                    *slog.Logger
	notifier               notify.Notifier
	onSessionExpired       func()
	onVerificationRequired func(email string)
}

// WithTokenStore sets the credential store. Defaults to an in-memory store;
// use tokenstore.NewFileStore to persist sessions across process restarts.
func WithTokenStore(s tokenstore.Store) Option {
	return func(o *options) {
		o.tokens = s
	}
}

// WithCacheStorage sets the cache backend. Defaults to in-process memory;
// use the redis integration to share the cache between processes.
func WithCacheStorage(s cache.Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithLogger sets the structured logger for all layers.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithNotifier routes user-facing success/error notifications. Defaults to
// discarding them.
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithSessionExpiredHook fires when a token refresh fails and credentials
// are cleared.
func WithSessionExpiredHook(fn func()) Option {
	return func(o *options) {
		o.onSessionExpired = fn
	}
}

// WithVerificationRequiredHook fires after a successful registration with
// the email address that must be verified.
func WithVerificationRequiredHook(fn func(email string)) Option {
	return func(o *options) {
		o.onVerificationRequired = fn
	}
}

// New creates a client for the API at cfg.API.BaseURL.
func New(cfg Config, opts ...Option) (*Client, error) {
	o := &options{
		tokens:   tokenstore.NewMemoryStore(),
		storage:  cache.NewMemoryStorage(),
		log:      slog.New(slog.DiscardHandler),
		notifier: notify.Nop{},
	}
	for _, opt := range opts {
		opt(o)
	}

	apiOpts := []apiclient.Option{apiclient.WithLogger(o.log)}
	if o.httpClient != nil {
		apiOpts = append(apiOpts, apiclient.WithHTTPClient(o.httpClient))
	}
	if o.onSessionExpired != nil {
		apiOpts = append(apiOpts, apiclient.WithSessionExpiredHook(o.onSessionExpired))
	}

	api, err := apiclient.New(cfg.API, o.tokens, apiOpts...)
	if err != nil {
		return nil, err
	}

	sessionOpts := []session.Option{
		session.WithNotifier(o.notifier),
		session.WithLogger(o.log),
	}
	if o.onVerificationRequired != nil {
		sessionOpts = append(sessionOpts, session.WithVerificationRequiredHook(o.onVerificationRequired))
	}

	c := &Client{
		api:        api,
		data:       cache.New(o.storage, cache.WithNotifier(o.notifier), cache.WithLogger(o.log)),
		notifier:   o.notifier,
		appBaseURL: cfg.AppBaseURL,
		Auth:       session.NewManager[User](authAPI{api: api}, o.tokens, sessionOpts...),
	}

	c.Users = &UsersService{client: c}
	c.Resumes = &ResumesService{client: c}
	c.Templates = &TemplatesService{client: c}
	c.ATS = &ATSService{client: c}
	c.Subscriptions = &SubscriptionsService{client: c}
	c.Referrals = &ReferralsService{client: c}
	c.Contact = &ContactService{client: c}
	c.Passwords = &PasswordsService{client: c}
	c.Verification = &VerificationService{client: c}

	return c, nil
}

// authAPI adapts the HTTP client to the slice the session manager drives.
type authAPI struct {
	api *apiclient.Client
}

func (a authAPI) ExchangeToken(ctx context.Context, username, password string) (tokenstore.TokenPair, error) {
	return a.api.ExchangeToken(ctx, username, password)
}

func (a authAPI) CurrentUser(ctx context.Context) (User, error) {
	var u User
	err := a.api.Get(ctx, "/users/me/", &u)
	return u, err
}

func (a authAPI) Register(ctx context.Context, params session.RegisterParams) (User, error) {
	var u User
	err := a.api.Post(ctx, "/users/register/", params, &u)
	return u, err
}

// itoa keeps cache key and path construction terse.
func itoa(id int) string {
	return strconv.Itoa(id)
}
