package apiclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload posts a single file as multipart/form-data under the given form
// field and decodes the JSON response into out. The Content-Type header is
// set by the multipart writer so the transport controls the boundary.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader, out any, fallback string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if err := writer.Close(); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	return c.do(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType(), out, fallback)
}
