package resumeforge

import (
	"context"
	"net/url"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/cache"
	"github.com/resumeforge/resumeforge-go/pkg/qrcode"
)

// ReferralsService manages invitation codes and shareable referral links.
type ReferralsService struct {
	client *Client
}

// List returns the referrals the current user has sent.
func (s *ReferralsService) List(ctx context.Context) ([]Referral, error) {
	return cache.Read(ctx, s.client.data, "referrals", staleDefault, func(ctx context.Context) ([]Referral, error) {
		return apiclient.GetList[Referral](ctx, s.client.api, "/users/referrals/my_referrals/")
	})
}

// Create sends a referral invitation to email using the given code.
func (s *ReferralsService) Create(ctx context.Context, email, code string) (Referral, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"referrals"},
		Success:     "Referral sent successfully",
		Failure:     "Failed to send referral",
	}, func(ctx context.Context) (Referral, error) {
		var ref Referral
		err := s.client.api.Post(ctx, "/users/referrals/", map[string]string{
			"email": email,
			"code":  code,
		}, &ref)
		return ref, err
	})
}

// ShareLink returns the registration URL carrying the referral code.
func (s *ReferralsService) ShareLink(code string) string {
	return s.client.appBaseURL + "/register?ref=" + url.QueryEscape(code)
}

// QRCode renders the referral share link as a PNG QR code of size x size
// pixels.
func (s *ReferralsService) QRCode(code string, size int) ([]byte, error) {
	return qrcode.Generate(s.ShareLink(code), size)
}

// QRCodeDataURI renders the referral share link as a base64 PNG data URI
// suitable for embedding in an <img> tag.
func (s *ReferralsService) QRCodeDataURI(code string) (string, error) {
	return qrcode.GenerateBase64Image(s.ShareLink(code), qrcode.DefaultSize)
}
