package domain

import (
	"fmt"
	"net/url"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultAPIHost is the ingestion API used when no host is configured.
const DefaultAPIHost = "https://api.smartlook.cloud"

// UploadRequest describes one upload invocation.
// It is treated as immutable once Validate succeeds; helpers return modified copies.
type UploadRequest struct {
	Path               string
	Token              string
	AppVersion         string
	InternalAppVersion string
	APIHost            string
	Platform           Platform
	BundleID           string
	Force              bool
}

// AppIdentifiers is the partial application identity read from a metadata file.
// Empty fields are absent.
type AppIdentifiers struct {
	AppVersion         string
	InternalAppVersion string
	BundleID           string
}

// IsZero reports whether no identifier was resolved.
func (a AppIdentifiers) IsZero() bool {
	return a == AppIdentifiers{}
}

// WithIdentifiers fills the fields the caller left unset from ids.
// Precedence per field is explicit > resolved > absent, so explicit values are never overridden
// and applying the same identifiers again returns the same request.
func (r UploadRequest) WithIdentifiers(ids *AppIdentifiers) UploadRequest {
	if ids == nil {
		return r
	}
	r.AppVersion = firstNonEmpty(r.AppVersion, ids.AppVersion)
	r.InternalAppVersion = firstNonEmpty(r.InternalAppVersion, ids.InternalAppVersion)
	r.BundleID = firstNonEmpty(r.BundleID, ids.BundleID)
	return r
}

// Validate checks that every required field is present.
func (r UploadRequest) Validate() error {
	switch r.Platform {
	case "":
		return MissingArgument("platform")
	case PlatformAndroid, PlatformApple:
	default:
		return InvalidArgument("platform", string(r.Platform))
	}

	required := []struct {
		field string
		value string
	}{
		{"path", r.Path},
		{"token", r.Token},
		{"appVersion", r.AppVersion},
		{"bundleId", r.BundleID},
		{"apiHost", r.APIHost},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return MissingArgument(f.field)
		}
	}
	return nil
}

// DestinationURL returns the mapping-files endpoint for this request, without query parameters.
func (r UploadRequest) DestinationURL() string {
	return fmt.Sprintf("%s/api/v1/bundles/%s/platforms/%s/releases/%s/mapping-files",
		strings.TrimRight(r.APIHost, "/"),
		url.PathEscape(r.BundleID),
		r.Platform.PathSegment(),
		url.PathEscape(r.AppVersion),
	)
}

// MissingArgument returns a validation error for an absent required field.
func MissingArgument(field string) error {
	return zerr.With(zerr.Wrap(ErrValidation, fmt.Sprintf("missing argument %q", field)), "field", field)
}

// InvalidArgument returns a validation error for a field holding an unusable value.
func InvalidArgument(field, value string) error {
	err := zerr.Wrap(ErrValidation, fmt.Sprintf("invalid argument %q", field))
	return zerr.With(zerr.With(err, "field", field), "value", value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
