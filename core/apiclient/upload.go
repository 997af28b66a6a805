package apiclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload posts a single file as a multipart form. The form body is built
// up front so the 401 refresh-and-replay protocol can resend it unchanged.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if err := writer.Close(); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	return c.execute(ctx, http.MethodPost, path, buf.Bytes(), writer.FormDataContentType(), out)
}
