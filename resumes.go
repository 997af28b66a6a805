package resumeforge

import (
	"context"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/cache"
)

// ResumesService manages resume documents and their version history.
type ResumesService struct {
	client *Client
}

// List returns all resumes owned by the current user.
func (s *ResumesService) List(ctx context.Context) ([]Resume, error) {
	return cache.Read(ctx, s.client.data, "resumes", staleDefault, func(ctx context.Context) ([]Resume, error) {
		return apiclient.GetList[Resume](ctx, s.client.api, "/resumes/")
	})
}

// Get returns a single resume.
func (s *ResumesService) Get(ctx context.Context, id int) (Resume, error) {
	return cache.Read(ctx, s.client.data, cache.Key("resume", itoa(id)), staleDefault, func(ctx context.Context) (Resume, error) {
		var r Resume
		err := s.client.api.Get(ctx, "/resumes/"+itoa(id)+"/", &r)
		return r, err
	})
}

// Create creates a new resume.
func (s *ResumesService) Create(ctx context.Context, params ResumeCreate) (Resume, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"resumes"},
		Success:     "Resume created successfully",
		Failure:     "Failed to create resume",
	}, func(ctx context.Context) (Resume, error) {
		var r Resume
		err := s.client.api.Post(ctx, "/resumes/", params, &r)
		return r, err
	})
}

// Update applies a partial change to a resume.
func (s *ResumesService) Update(ctx context.Context, id int, update ResumeUpdate) (Resume, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"resumes", cache.Key("resume", itoa(id))},
		Success:     "Resume updated successfully",
		Failure:     "Failed to update resume",
	}, func(ctx context.Context) (Resume, error) {
		var r Resume
		err := s.client.api.Patch(ctx, "/resumes/"+itoa(id)+"/", update, &r)
		return r, err
	})
}

// Delete removes a resume.
func (s *ResumesService) Delete(ctx context.Context, id int) error {
	_, err := cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"resumes"},
		Success:     "Resume deleted successfully",
		Failure:     "Failed to delete resume",
	}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.api.Delete(ctx, "/resumes/"+itoa(id)+"/")
	})
	return err
}

// Versions returns the version history of a resume, newest first.
func (s *ResumesService) Versions(ctx context.Context, id int) ([]ResumeVersion, error) {
	return cache.Read(ctx, s.client.data, cache.Key("resume-versions", itoa(id)), staleDefault, func(ctx context.Context) ([]ResumeVersion, error) {
		var versions []ResumeVersion
		err := s.client.api.Get(ctx, "/resumes/"+itoa(id)+"/versions/", &versions)
		return versions, err
	})
}

// RestoreVersion reverts a resume to a previous version and returns the
// restored document.
func (s *ResumesService) RestoreVersion(ctx context.Context, id, versionID int) (Resume, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{
			"resumes",
			cache.Key("resume", itoa(id)),
			cache.Key("resume-versions", itoa(id)),
		},
		Success: "Resume version restored successfully",
		Failure: "Failed to restore resume version",
	}, func(ctx context.Context) (Resume, error) {
		var r Resume
		err := s.client.api.Get(ctx, "/resumes/"+itoa(id)+"/restore_version/?version="+itoa(versionID), &r)
		return r, err
	})
}
