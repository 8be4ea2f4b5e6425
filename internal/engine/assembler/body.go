package assembler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"
	"sync"

	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/zerr"
)

// lazyBody streams the multipart encoding of its parts.
// Encoding starts on the first Read; Close stops it at any point.
type lazyBody struct {
	parts []domain.Part

	pr *io.PipeReader
	pw *io.PipeWriter
	mw *multipart.Writer

	start sync.Once
}

func newLazyBody(parts []domain.Part) *lazyBody {
	pr, pw := io.Pipe()
	return &lazyBody{
		parts: parts,
		pr:    pr,
		pw:    pw,
		mw:    multipart.NewWriter(pw),
	}
}

// ContentType returns the multipart content type including the boundary.
func (b *lazyBody) ContentType() string {
	return b.mw.FormDataContentType()
}

func (b *lazyBody) Read(p []byte) (int, error) {
	b.start.Do(func() {
		go b.encode()
	})
	return b.pr.Read(p)
}

func (b *lazyBody) Close() error {
	return b.pr.Close()
}

func (b *lazyBody) encode() {
	for _, part := range b.parts {
		if err := b.writePart(part); err != nil {
			b.pw.CloseWithError(err)
			return
		}
	}
	if err := b.mw.Close(); err != nil {
		b.pw.CloseWithError(err)
		return
	}
	_ = b.pw.Close()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (b *lazyBody) writePart(part domain.Part) error {
	if !part.IsFile() {
		return b.mw.WriteField(part.Name, part.Value)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(part.Name), quoteEscaper.Replace(part.FileName)))
	h.Set("Content-Type", part.ContentType)
	for k, v := range part.Header {
		h.Set(k, v)
	}

	w, err := b.mw.CreatePart(h)
	if err != nil {
		return err
	}

	f, err := os.Open(part.Path) //nolint:gosec // path comes from the validated request or the packager
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrAssemblyFailed, err.Error()), "path", part.Path)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrAssemblyFailed, err.Error()), "path", part.Path)
	}
	return nil
}
