// Package ingest sends assembled symbol uploads to the ingestion API.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultTimeout bounds a whole upload, body included.
	DefaultTimeout = 10 * time.Minute

	maxErrorBody = 4 << 10
)

// Doer issues HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ ports.Uploader = (*Uploader)(nil)

// Uploader implements ports.Uploader over HTTP.
type Uploader struct {
	client Doer
	logger ports.Logger
}

// NewUploader creates an Uploader sending requests through client.
func NewUploader(client Doer, logger ports.Logger) *Uploader {
	return &Uploader{
		client: client,
		logger: logger,
	}
}

// NewHTTPClient returns the client used in production.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// Upload posts opts to destination with opts.SearchParams as the query.
// Any 2xx status is a success. No retries are attempted.
func (u *Uploader) Upload(ctx context.Context, destination string, opts *domain.RequestOptions) (err error) {
	if opts == nil || opts.Body == nil {
		return zerr.Wrap(domain.ErrUploadFailed, "request has no body")
	}
	defer func() {
		if cerr := opts.Body.Close(); cerr != nil && err == nil {
			u.logger.Debug(fmt.Sprintf("closing request body: %v", cerr))
		}
	}()

	target := destination
	if len(opts.SearchParams) > 0 {
		target += "?" + opts.SearchParams.Encode()
	}

	counter := &byteCounter{}
	body := io.TeeReader(opts.Body, counter)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return uploadError(zerr.Wrap(domain.ErrUploadFailed, err.Error()), target)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	u.logger.Debug(fmt.Sprintf("POST %s (%d parts)", target, len(opts.Parts)))
	resp, err := u.client.Do(req)
	if err != nil {
		return uploadError(zerr.Wrap(domain.ErrUploadFailed, err.Error()), target)
	}
	defer resp.Body.Close() //nolint:errcheck // response fully handled below

	if v, ok := ports.VertexFromContext(ctx); ok {
		_, _ = fmt.Fprintf(v.Stdout(), "sent %d bytes, got %s\n", counter.n, resp.Status)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		failed := zerr.With(zerr.Wrap(domain.ErrUploadFailed, resp.Status), "status", resp.StatusCode)
		failed = zerr.With(failed, "body", strings.TrimSpace(string(excerpt)))
		return uploadError(failed, target)
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	u.logger.Info(fmt.Sprintf("upload accepted with status %d", resp.StatusCode))
	return nil
}

func uploadError(err error, target string) error {
	return zerr.With(err, "url", target)
}

type byteCounter struct {
	n int64
}

func (c *byteCounter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
