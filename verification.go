package resumeforge

import (
	"context"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
)

// VerificationService completes the email verification step that follows
// registration. Operations report soft failures: the result carries a
// user-facing message for both outcomes instead of returning an error, so
// the verification form can show it verbatim.
type VerificationService struct {
	client *Client
}

// VerifyEmail confirms the address with the OTP code sent to it.
func (s *VerificationService) VerifyEmail(ctx context.Context, email, otp string) VerificationResult {
	var resp struct {
		Message string `json:"message"`
	}
	err := s.client.api.Post(ctx, "/users/verify-email/", map[string]string{
		"email": email,
		"otp":   otp,
	}, &resp)
	if err != nil {
		return VerificationResult{Message: apiclient.Message(err, "Invalid or expired OTP")}
	}
	return VerificationResult{Success: true, Message: resp.Message}
}

// Resend sends a fresh OTP to the given address.
func (s *VerificationService) Resend(ctx context.Context, email string) VerificationResult {
	var resp struct {
		Message string `json:"message"`
	}
	err := s.client.api.Post(ctx, "/users/resend-verification/", map[string]string{"email": email}, &resp)
	if err != nil {
		return VerificationResult{Message: apiclient.Message(err, "Failed to resend verification email")}
	}
	return VerificationResult{Success: true, Message: resp.Message}
}
