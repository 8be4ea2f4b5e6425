package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symup/internal/adapters/config"
	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoad_Success(t *testing.T) {
	content := `
api_host: https://ingest.example.com
path: build/App.xcarchive
token: secret
bundle_id: com.example.app
app_version: 1.2.3
internal_app_version: "42"
platform: ios
force: false
`
	configPath := filepath.Join(t.TempDir(), ".symup.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	settings, err := newLoader(t).Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, settings)

	assert.Equal(t, "https://ingest.example.com", settings.APIHost)
	assert.Equal(t, "build/App.xcarchive", settings.Path)
	assert.Equal(t, "secret", settings.Token)
	assert.Equal(t, "com.example.app", settings.BundleID)
	assert.Equal(t, "1.2.3", settings.AppVersion)
	assert.Equal(t, "42", settings.InternalAppVersion)
	assert.Equal(t, "ios", settings.Platform)
	require.NotNil(t, settings.Force)
	assert.False(t, *settings.Force)
}

func TestLoad_MissingFile(t *testing.T) {
	settings, err := newLoader(t).Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestLoad_Unreadable(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := newLoader(t).Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSettingsReadFailed))
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".symup.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("token: [unclosed"), 0o600))

	_, err := newLoader(t).Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSettingsParseFailed))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, configPath, zErr.Metadata()["path"])
}

func TestParse(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		settings, err := config.Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, &domain.Settings{}, settings)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := config.Parse([]byte("tokn: typo\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSettingsParseFailed))
	})

	t.Run("ForceAbsent", func(t *testing.T) {
		settings, err := config.Parse([]byte("platform: android\n"))
		require.NoError(t, err)
		assert.Nil(t, settings.Force)
	})
}
