package resumeforge

import (
	"context"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/validate"
)

// ContactService submits support requests and product feedback. These
// endpoints work without authentication.
type ContactService struct {
	client *Client
}

// SubmitForm sends a support contact form. The form is validated before any
// request; the acknowledgment carries a ticket ID when the server opened
// one.
func (s *ContactService) SubmitForm(ctx context.Context, form ContactForm) (ContactResponse, error) {
	if err := validate.Struct(form); err != nil {
		s.client.notifier.Error(err.Error())
		return ContactResponse{}, err
	}

	var resp ContactResponse
	if err := s.client.api.Post(ctx, "/contact/", form, &resp); err != nil {
		s.client.notifier.Error(apiclient.Message(err, "Please try again later or contact us directly."))
		return ContactResponse{}, err
	}

	if resp.TicketID != "" {
		s.client.notifier.Success("Thank you for contacting us! Ticket ID: " + resp.TicketID)
	} else {
		s.client.notifier.Success("Thank you for contacting us! We'll get back to you soon.")
	}
	return resp, nil
}

// SubmitFeedback sends product feedback. Type must be bug, feature, or
// general.
func (s *ContactService) SubmitFeedback(ctx context.Context, feedback Feedback) (ContactResponse, error) {
	if err := validate.Struct(feedback); err != nil {
		s.client.notifier.Error(err.Error())
		return ContactResponse{}, err
	}

	var resp ContactResponse
	if err := s.client.api.Post(ctx, "/feedback/", feedback, &resp); err != nil {
		s.client.notifier.Error(apiclient.Message(err, "Please try again later."))
		return ContactResponse{}, err
	}

	s.client.notifier.Success("Thank you for your feedback! We appreciate your input.")
	return resp, nil
}
