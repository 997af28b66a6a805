package resumeforge

import (
	"context"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/cache"
)

// TemplatesService exposes the read-only template gallery.
type TemplatesService struct {
	client *Client
}

// List returns all available templates.
func (s *TemplatesService) List(ctx context.Context) ([]Template, error) {
	return cache.Read(ctx, s.client.data, "templates", staleTemplates, func(ctx context.Context) ([]Template, error) {
		return apiclient.GetList[Template](ctx, s.client.api, "/templates/")
	})
}

// Get returns a single template.
func (s *TemplatesService) Get(ctx context.Context, id int) (Template, error) {
	return cache.Read(ctx, s.client.data, cache.Key("template", itoa(id)), staleTemplates, func(ctx context.Context) (Template, error) {
		var t Template
		err := s.client.api.Get(ctx, "/templates/"+itoa(id)+"/", &t)
		return t, err
	})
}
