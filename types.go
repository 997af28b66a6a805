package resumeforge

import "time"

// User is the authenticated account profile.
type User struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileUpdate is a partial profile change. Zero-valued fields are omitted
// from the request so the server only touches what the caller set.
type ProfileUpdate struct {
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ChangePasswordParams changes the password of a logged-in user.
type ChangePasswordParams struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// UserActivity is one entry of the account activity log.
type UserActivity struct {
	ID           int       `json:"id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStats aggregates account usage counters.
type UserStats struct {
	TotalResumes     int       `json:"total_resumes"`
	TotalATSAnalyses int       `json:"total_ats_analyses"`
	TotalReferrals   int       `json:"total_referrals"`
	AccountCreated   time.Time `json:"account_created"`
	LastLogin        time.Time `json:"last_login"`
}

// Resume is a stored resume document. Content is the free-form section tree
// the editor produces; the server treats it as opaque JSON.
type Resume struct {
	ID        int            `json:"id"`
	Title     string         `json:"title"`
	Content   map[string]any `json:"content"`
	Template  *int           `json:"template,omitempty"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ResumeCreate is the payload for creating a resume.
type ResumeCreate struct {
	Title    string         `json:"title" validate:"required"`
	Content  map[string]any `json:"content" validate:"required"`
	Template *int           `json:"template,omitempty"`
	IsActive *bool          `json:"is_active,omitempty"`
}

// ResumeUpdate is a partial resume change.
type ResumeUpdate struct {
	Title    string         `json:"title,omitempty"`
	Content  map[string]any `json:"content,omitempty"`
	Template *int           `json:"template,omitempty"`
	IsActive *bool          `json:"is_active,omitempty"`
}

// ResumeVersion is a historical snapshot of a resume.
type ResumeVersion struct {
	ID        int            `json:"id"`
	Content   map[string]any `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
}

// TemplateCategory groups templates in the gallery.
type TemplateCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Template is a resume layout available in the gallery.
type Template struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    TemplateCategory `json:"category"`
	Thumbnail   string           `json:"thumbnail"`
	IsPremium   bool             `json:"is_premium"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ATSScoreParams requests an ATS analysis of a resume against a job posting.
type ATSScoreParams struct {
	ResumeID       int    `json:"resume_id" validate:"required"`
	JobTitle       string `json:"job_title" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// KeywordMatch is one keyword the analyzer looked for in the resume.
type KeywordMatch struct {
	ID         int    `json:"id"`
	Keyword    string `json:"keyword"`
	Found      bool   `json:"found"`
	Importance string `json:"importance"`
	Context    string `json:"context"`
}

// OptimizationSuggestion is a proposed rewrite of one resume section.
type OptimizationSuggestion struct {
	ID            int    `json:"id"`
	Section       string `json:"section"`
	OriginalText  string `json:"original_text"`
	SuggestedText string `json:"suggested_text"`
	Reason        string `json:"reason"`
	Applied       bool   `json:"applied"`
}

// ATSScore is a completed analysis with its findings.
type ATSScore struct {
	ID                      int                      `json:"id"`
	JobTitle                string                   `json:"job_title"`
	JobDescription          string                   `json:"job_description"`
	Score                   float64                  `json:"score"`
	Analysis                map[string]any           `json:"analysis"`
	Suggestions             map[string]any           `json:"suggestions"`
	KeywordMatches          []KeywordMatch           `json:"keyword_matches"`
	OptimizationSuggestions []OptimizationSuggestion `json:"optimization_suggestions"`
	CreatedAt               time.Time                `json:"created_at"`
	UpdatedAt               time.Time                `json:"updated_at"`
}

// JobTitleSynonym maps a job title to an equivalent phrasing the analyzer
// also accepts.
type JobTitleSynonym struct {
	ID       int    `json:"id"`
	JobTitle string `json:"job_title"`
	Synonym  string `json:"synonym"`
}

// SubscriptionPlan is a purchasable plan. Price is a decimal string to avoid
// float rounding of money.
type SubscriptionPlan struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          string         `json:"price"`
	DurationMonths int            `json:"duration_months"`
	Features       map[string]any `json:"features"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Subscription is the account's plan membership.
type Subscription struct {
	ID          int              `json:"id"`
	Plan        SubscriptionPlan `json:"plan"`
	Status      string           `json:"status"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	IsAutoRenew bool             `json:"is_auto_renew"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Transaction is a payment record.
type Transaction struct {
	ID                     int            `json:"id"`
	Amount                 string         `json:"amount"`
	Currency               string         `json:"currency"`
	PaymentMethod          string         `json:"payment_method"`
	Status                 string         `json:"status"`
	TransactionID          string         `json:"transaction_id"`
	PaymentGatewayResponse map[string]any `json:"payment_gateway_response"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

// TransactionParams starts a payment for a subscription.
type TransactionParams struct {
	SubscriptionID *int   `json:"subscription_id,omitempty"`
	Amount         string `json:"amount" validate:"required"`
	Currency       string `json:"currency,omitempty"`
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=credit_card debit_card upi net_banking wallet"`
}

// Referral is an invitation sent to another person.
type Referral struct {
	ID           int       `json:"id"`
	Code         string    `json:"code"`
	IsSuccessful bool      `json:"is_successful"`
	CreatedAt    time.Time `json:"created_at"`
}

// ContactForm is the support contact form.
type ContactForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Subject  string `json:"subject" validate:"required"`
	Category string `json:"category" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// Feedback is a product feedback submission.
type Feedback struct {
	Type        string `json:"type" validate:"required,oneof=bug feature general"`
	Description string `json:"description" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

// ContactResponse acknowledges a contact or feedback submission.
type ContactResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TicketID string `json:"ticket_id,omitempty"`
}

// ResetPasswordParams completes a password reset started by email.
type ResetPasswordParams struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// PasswordResetResponse acknowledges a password reset operation.
type PasswordResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerificationResult reports an email verification operation. Failures are
// folded into the result rather than returned as errors so callers can show
// Message either way.
type VerificationResult struct {
	Success bool
	Message string
}
