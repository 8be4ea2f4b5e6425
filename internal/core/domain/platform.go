package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies the family of artifacts being uploaded.
type Platform string

const (
	// PlatformAndroid uploads a single ProGuard/R8 mapping file.
	PlatformAndroid Platform = "android"
	// PlatformApple uploads one or more dSYM bundles.
	PlatformApple Platform = "apple"
)

// ParsePlatform converts user input to a Platform. "ios" is accepted as an alias of apple.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "android":
		return PlatformAndroid, nil
	case "apple", "ios":
		return PlatformApple, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnsupportedPlatform, "cannot parse platform"), "platform", s)
	}
}

// PathSegment returns the platform name used by the ingestion API.
func (p Platform) PathSegment() string {
	if p == PlatformApple {
		return "ios"
	}
	return string(p)
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return string(p)
}
