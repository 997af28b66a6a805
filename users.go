package resumeforge

import (
	"context"
	"io"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/cache"
	"github.com/resumeforge/resumeforge-go/core/validate"
)

// UsersService manages the current account: profile, password, activity log,
// stats, avatar.
type UsersService struct {
	client *Client
}

// Current returns the authenticated user's profile.
func (s *UsersService) Current(ctx context.Context) (User, error) {
	return cache.Read(ctx, s.client.data, "current-user", staleDefault, func(ctx context.Context) (User, error) {
		var u User
		err := s.client.api.Get(ctx, "/users/me/", &u)
		return u, err
	})
}

// UpdateProfile applies a partial profile change.
func (s *UsersService) UpdateProfile(ctx context.Context, update ProfileUpdate) (User, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"current-user"},
		Success:     "Profile updated successfully",
		Failure:     "Failed to update profile",
	}, func(ctx context.Context) (User, error) {
		var u User
		err := s.client.api.Patch(ctx, "/users/me/", update, &u)
		return u, err
	})
}

// ChangePassword changes the password of the logged-in user. The new
// password and its confirmation are checked client-side before any request.
func (s *UsersService) ChangePassword(ctx context.Context, params ChangePasswordParams) error {
	if err := validate.Struct(params); err != nil {
		s.client.notifier.Error(err.Error())
		return err
	}

	_, err := cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Success: "Password changed successfully",
		Failure: "Failed to change password",
	}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.api.Post(ctx, "/users/change-password/", params, nil)
	})
	return err
}

// Activities returns the account activity log.
func (s *UsersService) Activities(ctx context.Context) ([]UserActivity, error) {
	return cache.Read(ctx, s.client.data, "user-activities", staleDefault, func(ctx context.Context) ([]UserActivity, error) {
		return apiclient.GetList[UserActivity](ctx, s.client.api, "/users/activities/")
	})
}

// Stats returns aggregated account usage counters.
func (s *UsersService) Stats(ctx context.Context) (UserStats, error) {
	return cache.Read(ctx, s.client.data, "user-stats", staleStats, func(ctx context.Context) (UserStats, error) {
		var stats UserStats
		err := s.client.api.Get(ctx, "/users/stats/", &stats)
		return stats, err
	})
}

// DeleteAccount permanently deletes the account. Callers typically follow a
// successful deletion with Auth.Logout to discard the now-dead credentials.
func (s *UsersService) DeleteAccount(ctx context.Context) error {
	_, err := cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Success: "Your account has been permanently deleted",
		Failure: "Failed to delete account",
	}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.api.Delete(ctx, "/users/me/")
	})
	return err
}

// UploadAvatar uploads a profile picture as multipart form data.
func (s *UsersService) UploadAvatar(ctx context.Context, filename string, file io.Reader) (User, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"current-user"},
		Success:     "Avatar uploaded successfully",
		Failure:     "Failed to upload avatar",
	}, func(ctx context.Context) (User, error) {
		var u User
		err := s.client.api.Upload(ctx, "/users/upload-avatar/", "avatar", filename, file, &u)
		return u, err
	})
}
