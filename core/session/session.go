package session

// Status is the authentication lifecycle state.
type Status int

const (
	// StatusIdle means the session has never been initialized.
	StatusIdle Status = iota
	// StatusLoading means a persisted token is being checked or an auth
	// operation is in flight.
	StatusLoading
	// StatusAuthenticated means the user is populated and requests carry
	// valid credentials.
	StatusAuthenticated
	// StatusUnauthenticated means no valid session exists.
	StatusUnauthenticated
	// StatusFailed means the last operation produced a user-visible error.
	// For access-control purposes it is equivalent to unauthenticated.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time view of the session state. User is nil unless
// the status is authenticated.
type Snapshot[U any] struct {
	User   *U
	Status Status
	Error  string
}

// IsAuthenticated reports whether the session holds a signed-in user.
func (s Snapshot[U]) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// IsLoading reports whether an auth operation is in flight.
func (s Snapshot[U]) IsLoading() bool {
	return s.Status == StatusLoading
}

// RegisterParams is the account-creation form. Validation runs before any
// network call; a rejected form issues zero HTTP requests.
type RegisterParams struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" validate:"required,min=8"`
	Password2   string `json:"password2" validate:"required,eqfield=Password"`
}
