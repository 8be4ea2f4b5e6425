package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/zerr"
)

func validRequest() domain.UploadRequest {
	return domain.UploadRequest{
		Path:       "/tmp/mapping.txt",
		Token:      "secret",
		AppVersion: "1.2.3",
		APIHost:    domain.DefaultAPIHost,
		Platform:   domain.PlatformAndroid,
		BundleID:   "com.example.app",
	}
}

func TestUploadRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *domain.UploadRequest)
		wantField string
	}{
		{"Valid", func(_ *domain.UploadRequest) {}, ""},
		{"MissingPlatform", func(r *domain.UploadRequest) { r.Platform = "" }, "platform"},
		{"UnknownPlatform", func(r *domain.UploadRequest) { r.Platform = "windows" }, "platform"},
		{"MissingPath", func(r *domain.UploadRequest) { r.Path = "" }, "path"},
		{"MissingToken", func(r *domain.UploadRequest) { r.Token = " " }, "token"},
		{"MissingAppVersion", func(r *domain.UploadRequest) { r.AppVersion = "" }, "appVersion"},
		{"MissingBundleID", func(r *domain.UploadRequest) { r.BundleID = "" }, "bundleId"},
		{"MissingAPIHost", func(r *domain.UploadRequest) { r.APIHost = "" }, "apiHost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, tt.wantField, zErr.Metadata()["field"])
		})
	}
}

func TestUploadRequest_Validate_ReportsFirstMissingField(t *testing.T) {
	req := domain.UploadRequest{Platform: domain.PlatformApple, APIHost: domain.DefaultAPIHost}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing argument "path"`)
}

func TestUploadRequest_WithIdentifiers(t *testing.T) {
	t.Run("ExplicitValuesWin", func(t *testing.T) {
		req := domain.UploadRequest{AppVersion: "9.9.9"}
		ids := &domain.AppIdentifiers{AppVersion: "1.0.0", InternalAppVersion: "42", BundleID: "com.example.app"}

		merged := req.WithIdentifiers(ids)

		assert.Equal(t, "9.9.9", merged.AppVersion)
		assert.Equal(t, "42", merged.InternalAppVersion)
		assert.Equal(t, "com.example.app", merged.BundleID)
		assert.Empty(t, req.BundleID, "receiver must not be modified")
	})

	t.Run("Idempotent", func(t *testing.T) {
		req := domain.UploadRequest{BundleID: "explicit"}
		ids := &domain.AppIdentifiers{AppVersion: "1.0.0", BundleID: "resolved"}

		once := req.WithIdentifiers(ids)
		twice := once.WithIdentifiers(ids)

		assert.Equal(t, once, twice)
		assert.Equal(t, "explicit", twice.BundleID)
	})

	t.Run("NilIsNoOp", func(t *testing.T) {
		req := validRequest()
		assert.Equal(t, req, req.WithIdentifiers(nil))
	})
}

func TestUploadRequest_DestinationURL(t *testing.T) {
	req := validRequest()
	req.APIHost = "https://ingest.example.com/"
	req.Platform = domain.PlatformApple
	req.AppVersion = "1.0 beta"

	assert.Equal(t,
		"https://ingest.example.com/api/v1/bundles/com.example.app/platforms/ios/releases/1.0%20beta/mapping-files",
		req.DestinationURL(),
	)
}

func TestAppIdentifiers_IsZero(t *testing.T) {
	assert.True(t, domain.AppIdentifiers{}.IsZero())
	assert.False(t, domain.AppIdentifiers{BundleID: "x"}.IsZero())
}
