package resumeforge_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resumeforge "github.com/resumeforge/resumeforge-go"
	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/notify"
	"github.com/resumeforge/resumeforge-go/core/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*resumeforge.Client, *notify.Recorder) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	recorder := &notify.Recorder{}
	client, err := resumeforge.New(resumeforge.Config{
		API:        apiclient.Config{BaseURL: srv.URL},
		AppBaseURL: "https://resumeforge.io",
	}, resumeforge.WithNotifier(recorder))
	require.NoError(t, err)

	return client, recorder
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func paginated(results any) map[string]any {
	return map[string]any{"count": 1, "next": nil, "previous": nil, "results": results}
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()

	t.Run("login exchanges tokens and attaches them to later requests", func(t *testing.T) {
		t.Parallel()

		var resumeAuth atomic.Value
		mux := http.NewServeMux()
		mux.HandleFunc("POST /token/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]string{"access": "acc-1", "refresh": "ref-1"})
		})
		mux.HandleFunc("GET /users/me/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 1, "username": "jordan"})
		})
		mux.HandleFunc("GET /resumes/", func(w http.ResponseWriter, r *http.Request) {
			resumeAuth.Store(r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, paginated([]any{}))
		})

		client, recorder := newTestClient(t, mux)

		require.NoError(t, client.Auth.Login(t.Context(), "jordan", "secret123"))
		snap := client.Auth.Snapshot()
		assert.True(t, snap.IsAuthenticated())
		assert.Equal(t, "jordan", snap.User.Username)
		assert.Equal(t, []string{"Logged in successfully"}, recorder.Successes())

		_, err := client.Resumes.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "Bearer acc-1", resumeAuth.Load())
	})

	t.Run("register does not authenticate and surfaces the verification email", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/register/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusCreated, map[string]any{"id": 2, "username": "casey"})
		})

		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		var verifyEmail string
		client, err := resumeforge.New(resumeforge.Config{
			API: apiclient.Config{BaseURL: srv.URL},
		}, resumeforge.WithVerificationRequiredHook(func(email string) {
			verifyEmail = email
		}))
		require.NoError(t, err)

		require.NoError(t, client.Auth.Register(t.Context(), session.RegisterParams{
			Username:  "casey",
			Email:     "casey@example.com",
			FullName:  "Casey Doe",
			Password:  "secret123",
			Password2: "secret123",
		}))

		assert.Equal(t, session.StatusUnauthenticated, client.Auth.Snapshot().Status)
		assert.Equal(t, "casey@example.com", verifyEmail)
	})
}

func TestResumes(t *testing.T) {
	t.Parallel()

	t.Run("list is cached within the staleness window", func(t *testing.T) {
		t.Parallel()

		var listCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /resumes/", func(w http.ResponseWriter, r *http.Request) {
			listCalls.Add(1)
			writeJSON(t, w, http.StatusOK, paginated([]map[string]any{{
				"id": 1, "title": "Backend Engineer", "is_active": true,
				"created_at": "2026-01-01T00:00:00Z", "updated_at": "2026-01-01T00:00:00Z",
			}}))
		})

		client, _ := newTestClient(t, mux)

		first, err := client.Resumes.List(t.Context())
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.Equal(t, "Backend Engineer", first[0].Title)

		second, err := client.Resumes.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), listCalls.Load())
	})

	t.Run("create notifies once and refreshes the list", func(t *testing.T) {
		t.Parallel()

		var listCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /resumes/", func(w http.ResponseWriter, r *http.Request) {
			listCalls.Add(1)
			writeJSON(t, w, http.StatusOK, paginated([]any{}))
		})
		mux.HandleFunc("POST /resumes/", func(w http.ResponseWriter, r *http.Request) {
			var params resumeforge.ResumeCreate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
			writeJSON(t, w, http.StatusCreated, map[string]any{
				"id": 7, "title": params.Title,
				"created_at": "2026-01-01T00:00:00Z", "updated_at": "2026-01-01T00:00:00Z",
			})
		})

		client, recorder := newTestClient(t, mux)

		_, err := client.Resumes.List(t.Context())
		require.NoError(t, err)

		created, err := client.Resumes.Create(t.Context(), resumeforge.ResumeCreate{
			Title:   "Platform Engineer",
			Content: map[string]any{"summary": "..."},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, created.ID)
		assert.Equal(t, []string{"Resume created successfully"}, recorder.Successes())

		assert.Eventually(t, func() bool {
			return listCalls.Load() == 2
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("create failure surfaces the server detail", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /resumes/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Title already in use"})
		})

		client, recorder := newTestClient(t, mux)

		_, err := client.Resumes.Create(t.Context(), resumeforge.ResumeCreate{
			Title:   "Duplicate",
			Content: map[string]any{},
		})
		require.Error(t, err)
		assert.Equal(t, []string{"Title already in use"}, recorder.Errors())
		assert.Empty(t, recorder.Successes())
	})

	t.Run("restore version reverts and refreshes the document", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /resumes/3/restore_version/", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "9", r.URL.Query().Get("version"))
			writeJSON(t, w, http.StatusOK, map[string]any{
				"id": 3, "title": "Restored",
				"created_at": "2026-01-01T00:00:00Z", "updated_at": "2026-01-02T00:00:00Z",
			})
		})

		client, recorder := newTestClient(t, mux)

		restored, err := client.Resumes.RestoreVersion(t.Context(), 3, 9)
		require.NoError(t, err)
		assert.Equal(t, "Restored", restored.Title)
		assert.Equal(t, []string{"Resume version restored successfully"}, recorder.Successes())
	})
}

func TestUsers(t *testing.T) {
	t.Parallel()

	t.Run("update profile refreshes the cached user", func(t *testing.T) {
		t.Parallel()

		var userCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /users/me/", func(w http.ResponseWriter, r *http.Request) {
			userCalls.Add(1)
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 1, "username": "jordan"})
		})
		mux.HandleFunc("PATCH /users/me/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 1, "username": "jordan", "full_name": "Jordan Doe"})
		})

		client, recorder := newTestClient(t, mux)

		_, err := client.Users.Current(t.Context())
		require.NoError(t, err)

		updated, err := client.Users.UpdateProfile(t.Context(), resumeforge.ProfileUpdate{FullName: "Jordan Doe"})
		require.NoError(t, err)
		assert.Equal(t, "Jordan Doe", updated.FullName)
		assert.Equal(t, []string{"Profile updated successfully"}, recorder.Successes())

		assert.Eventually(t, func() bool {
			return userCalls.Load() == 2
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("change password rejects a mismatched confirmation without a request", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		client, recorder := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusOK)
		}))

		err := client.Users.ChangePassword(t.Context(), resumeforge.ChangePasswordParams{
			OldPassword:     "old-secret",
			NewPassword:     "new-secret-1",
			ConfirmPassword: "new-secret-2",
		})
		require.Error(t, err)
		assert.Equal(t, int32(0), hits.Load())
		assert.Equal(t, []string{"Passwords do not match"}, recorder.Errors())
	})
}

func TestATS(t *testing.T) {
	t.Parallel()

	t.Run("apply suggestion refreshes the score and its suggestions", func(t *testing.T) {
		t.Parallel()

		var scoreCalls, suggestionCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /ats/scores/5/", func(w http.ResponseWriter, r *http.Request) {
			scoreCalls.Add(1)
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 5, "score": 71.5})
		})
		mux.HandleFunc("GET /ats/scores/5/optimization_suggestions/", func(w http.ResponseWriter, r *http.Request) {
			suggestionCalls.Add(1)
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": 11, "section": "summary"}})
		})
		mux.HandleFunc("POST /ats/scores/5/apply_suggestion/", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]int
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 11, body["suggestion_id"])
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 5, "score": 78.0})
		})

		client, recorder := newTestClient(t, mux)

		_, err := client.ATS.GetScore(t.Context(), 5)
		require.NoError(t, err)
		_, err = client.ATS.Suggestions(t.Context(), 5)
		require.NoError(t, err)

		applied, err := client.ATS.ApplySuggestion(t.Context(), 5, 11)
		require.NoError(t, err)
		assert.Equal(t, 78.0, applied.Score)
		assert.Equal(t, []string{"Suggestion applied successfully"}, recorder.Successes())

		assert.Eventually(t, func() bool {
			return scoreCalls.Load() == 2 && suggestionCalls.Load() == 2
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("create score validates input before any request", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))

		_, err := client.ATS.CreateScore(t.Context(), resumeforge.ATSScoreParams{JobTitle: "SRE"})
		require.Error(t, err)
		assert.Equal(t, int32(0), hits.Load())
	})
}

func TestSubscriptions(t *testing.T) {
	t.Parallel()

	t.Run("absent subscription is nil, not an error", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /subscriptions/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, paginated([]any{}))
		})

		client, _ := newTestClient(t, mux)

		sub, err := client.Subscriptions.Current(t.Context())
		require.NoError(t, err)
		assert.Nil(t, sub)
	})

	t.Run("cancel refreshes the current subscription", func(t *testing.T) {
		t.Parallel()

		var currentCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /subscriptions/", func(w http.ResponseWriter, r *http.Request) {
			currentCalls.Add(1)
			status := "active"
			if currentCalls.Load() > 1 {
				status = "cancelled"
			}
			writeJSON(t, w, http.StatusOK, paginated([]map[string]any{{"id": 4, "status": status}}))
		})
		mux.HandleFunc("POST /subscriptions/4/cancel/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 4, "status": "cancelled"})
		})

		client, recorder := newTestClient(t, mux)

		sub, err := client.Subscriptions.Current(t.Context())
		require.NoError(t, err)
		require.NotNil(t, sub)

		cancelled, err := client.Subscriptions.Cancel(t.Context(), sub.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", cancelled.Status)
		assert.Equal(t, []string{"Subscription cancelled successfully"}, recorder.Successes())

		assert.Eventually(t, func() bool {
			return currentCalls.Load() == 2
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("create transaction validates the payment method", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))

		_, err := client.Subscriptions.CreateTransaction(t.Context(), resumeforge.TransactionParams{
			Amount:        "9.99",
			PaymentMethod: "cash",
		})
		require.Error(t, err)
		assert.Equal(t, int32(0), hits.Load())
	})
}

func TestReferrals(t *testing.T) {
	t.Parallel()

	t.Run("share link carries the code", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, http.NewServeMux())
		assert.Equal(t, "https://resumeforge.io/register?ref=FRIEND-42", client.Referrals.ShareLink("FRIEND-42"))
	})

	t.Run("qr code renders the share link", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, http.NewServeMux())

		png, err := client.Referrals.QRCode("FRIEND-42", 128)
		require.NoError(t, err)
		assert.NotEmpty(t, png)

		uri, err := client.Referrals.QRCodeDataURI("FRIEND-42")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	})

	t.Run("create invalidates the referral list", func(t *testing.T) {
		t.Parallel()

		var listCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /users/referrals/my_referrals/", func(w http.ResponseWriter, r *http.Request) {
			listCalls.Add(1)
			writeJSON(t, w, http.StatusOK, paginated([]any{}))
		})
		mux.HandleFunc("POST /users/referrals/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusCreated, map[string]any{"id": 1, "code": "FRIEND-42"})
		})

		client, recorder := newTestClient(t, mux)

		_, err := client.Referrals.List(t.Context())
		require.NoError(t, err)

		_, err = client.Referrals.Create(t.Context(), "friend@example.com", "FRIEND-42")
		require.NoError(t, err)
		assert.Equal(t, []string{"Referral sent successfully"}, recorder.Successes())

		assert.Eventually(t, func() bool {
			return listCalls.Load() == 2
		}, time.Second, 5*time.Millisecond)
	})
}

func TestContact(t *testing.T) {
	t.Parallel()

	t.Run("submit acknowledges with the ticket id", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /contact/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"success": true, "message": "received", "ticket_id": "T-1001"})
		})

		client, recorder := newTestClient(t, mux)

		resp, err := client.Contact.SubmitForm(t.Context(), resumeforge.ContactForm{
			Name:     "Jordan",
			Email:    "jordan@example.com",
			Subject:  "Billing",
			Category: "billing",
			Message:  "Charged twice",
		})
		require.NoError(t, err)
		assert.Equal(t, "T-1001", resp.TicketID)
		assert.Equal(t, []string{"Thank you for contacting us! Ticket ID: T-1001"}, recorder.Successes())
	})

	t.Run("invalid form never reaches the network", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		client, recorder := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))

		_, err := client.Contact.SubmitForm(t.Context(), resumeforge.ContactForm{
			Name:  "Jordan",
			Email: "not-an-email",
		})
		require.Error(t, err)
		assert.Equal(t, int32(0), hits.Load())
		assert.Equal(t, []string{"Enter a valid email address"}, recorder.Errors())
	})

	t.Run("feedback type must be known", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))

		_, err := client.Contact.SubmitFeedback(t.Context(), resumeforge.Feedback{
			Type:        "complaint",
			Description: "…",
		})
		require.Error(t, err)
		assert.Equal(t, int32(0), hits.Load())
	})
}

func TestPasswords(t *testing.T) {
	t.Parallel()

	t.Run("reset rejects mismatched passwords without a request", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		client, recorder := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))

		_, err := client.Passwords.Reset(t.Context(), resumeforge.ResetPasswordParams{
			Token:           "tok-1",
			NewPassword:     "new-secret-1",
			ConfirmPassword: "new-secret-2",
		})
		require.Error(t, err)
		assert.Equal(t, int32(0), hits.Load())
		assert.Equal(t, []string{"Passwords do not match"}, recorder.Errors())
	})

	t.Run("validate reset token", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /auth/validate-reset-token/tok-1/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]bool{"valid": true})
		})

		client, _ := newTestClient(t, mux)

		valid, err := client.Passwords.ValidateResetToken(t.Context(), "tok-1")
		require.NoError(t, err)
		assert.True(t, valid)
	})
}

func TestVerification(t *testing.T) {
	t.Parallel()

	t.Run("verify email reports the server message", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/verify-email/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "Email verified"})
		})

		client, _ := newTestClient(t, mux)

		result := client.Verification.VerifyEmail(t.Context(), "casey@example.com", "123456")
		assert.True(t, result.Success)
		assert.Equal(t, "Email verified", result.Message)
	})

	t.Run("failure is folded into the result", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /users/verify-email/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": "OTP has expired"})
		})

		client, _ := newTestClient(t, mux)

		result := client.Verification.VerifyEmail(t.Context(), "casey@example.com", "000000")
		assert.False(t, result.Success)
		assert.Equal(t, "OTP has expired", result.Message)
	})
}
