package resumeforge

import (
	"context"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/validate"
)

// PasswordsService handles the forgot-password flow for users who cannot
// log in. Password changes for authenticated users live on UsersService.
type PasswordsService struct {
	client *Client
}

// RequestReset emails a password reset link to the given address.
func (s *PasswordsService) RequestReset(ctx context.Context, email string) (PasswordResetResponse, error) {
	var resp PasswordResetResponse
	if err := s.client.api.Post(ctx, "/auth/forgot-password/", map[string]string{"email": email}, &resp); err != nil {
		s.client.notifier.Error(apiclient.Message(err, "Please check your email address and try again."))
		return PasswordResetResponse{}, err
	}

	s.client.notifier.Success("Please check your email for password reset instructions.")
	return resp, nil
}

// Reset completes a reset using the emailed token. The new password and its
// confirmation are checked client-side before any request.
func (s *PasswordsService) Reset(ctx context.Context, params ResetPasswordParams) (PasswordResetResponse, error) {
	if err := validate.Struct(params); err != nil {
		s.client.notifier.Error(err.Error())
		return PasswordResetResponse{}, err
	}

	var resp PasswordResetResponse
	if err := s.client.api.Post(ctx, "/auth/reset-password/", params, &resp); err != nil {
		s.client.notifier.Error(apiclient.Message(err, "Please try again or request a new reset link."))
		return PasswordResetResponse{}, err
	}

	s.client.notifier.Success("Your password has been reset. You can now log in with your new password.")
	return resp, nil
}

// ValidateResetToken reports whether an emailed reset token is still usable,
// letting the reset form reject dead links before asking for a password.
func (s *PasswordsService) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	if err := s.client.api.Get(ctx, "/auth/validate-reset-token/"+token+"/", &resp); err != nil {
		return false, err
	}
	return resp.Valid, nil
}
