package domain

import (
	"io"
	"net/url"
)

const (
	// ContentTypeGzip is the content type of packaged Apple symbol archives.
	ContentTypeGzip = "application/gzip"
	// ContentTypeOctetStream is the content type of Android mapping files.
	ContentTypeOctetStream = "application/octet-stream"

	// HeaderContentUUID tags a part with the build UUID of the archived binary.
	HeaderContentUUID = "X-Content-UUID"

	// PartAndroidMapping is the part name of the single Android mapping file.
	PartAndroidMapping = "mappingFile"
	// FieldInternalAppVersion is the form field carrying the internal build number.
	FieldInternalAppVersion = "internalAppVersion"
)

// Part is one entry of a multipart upload body.
// A part carries either file content read from Path or a plain form Value.
type Part struct {
	Name        string
	FileName    string
	ContentType string
	Header      map[string]string
	Path        string
	Value       string
}

// IsFile reports whether the part streams file content.
func (p Part) IsFile() bool {
	return p.Path != ""
}

// RequestOptions is the fully assembled upload request.
// It is built once and consumed exactly once by the uploader.
type RequestOptions struct {
	SearchParams url.Values
	Headers      map[string]string
	Parts        []Part
	// Body streams the multipart encoding of Parts. It is produced lazily on first read.
	Body io.ReadCloser
}
