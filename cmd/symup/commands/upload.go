package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/symup/internal/core/domain"
)

// Environment variables consulted when a flag is not given.
const (
	EnvAPIHost            = "API_HOST"
	EnvPath               = "PATH_TO_MAPPING_FILE"
	EnvPathLegacy         = "PATH_TO_MAPING_FILE"
	EnvToken              = "API_TOKEN"
	EnvBundleID           = "BUNDLE_ID"
	EnvAppVersion         = "APP_VERSION"
	EnvPlatform           = "PLATFORM"
	EnvInternalAppVersion = "INTERNAL_APP_VERSION"
	EnvForce              = "FORCE"
)

func (c *CLI) newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "upload-mapping-file",
		Aliases: []string{"umf"},
		Short:   "Upload an Android mapping file or Apple debug symbols",
		Long: "Upload an Android mapping file or the Apple debug-symbol bundles found under a path.\n" +
			"Each option is taken from its flag, then its environment variable, then the settings file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			settings, err := c.app.LoadSettings(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			req, err := requestFromCommand(cmd, settings)
			if err != nil {
				return err
			}
			return c.app.Upload(cmd.Context(), req)
		},
	}

	cmd.Flags().StringP("apiHost", "a", "", "Ingestion API host (env "+EnvAPIHost+", default "+domain.DefaultAPIHost+")")
	cmd.Flags().StringP("path", "p", "", "Mapping file, .dSYM bundle or directory containing bundles (env "+EnvPath+")")
	cmd.Flags().StringP("token", "t", "", "API token (env "+EnvToken+")")
	cmd.Flags().StringP("bundleId", "b", "", "Application bundle identifier (env "+EnvBundleID+")")
	cmd.Flags().String("appVersion", "", "Application version (env "+EnvAppVersion+")")
	cmd.Flags().String("platform", "", "Target platform: android, apple or ios (env "+EnvPlatform+")")
	cmd.Flags().String("internalVersion", "", "Internal build number (env "+EnvInternalAppVersion+")")
	cmd.Flags().BoolP("force", "f", false, "Replace symbols already uploaded for this release (env "+EnvForce+")")

	return cmd
}

// requestFromCommand resolves each option as flag > environment > settings > default.
func requestFromCommand(cmd *cobra.Command, settings *domain.Settings) (domain.UploadRequest, error) {
	if settings == nil {
		settings = &domain.Settings{}
	}

	req := domain.UploadRequest{
		APIHost:            lookup(cmd, "apiHost", settings.APIHost, domain.DefaultAPIHost, EnvAPIHost),
		Path:               lookup(cmd, "path", settings.Path, "", EnvPath, EnvPathLegacy),
		Token:              lookup(cmd, "token", settings.Token, "", EnvToken),
		BundleID:           lookup(cmd, "bundleId", settings.BundleID, "", EnvBundleID),
		AppVersion:         lookup(cmd, "appVersion", settings.AppVersion, "", EnvAppVersion),
		InternalAppVersion: lookup(cmd, "internalVersion", settings.InternalAppVersion, "", EnvInternalAppVersion),
	}

	if raw := lookup(cmd, "platform", settings.Platform, "", EnvPlatform); raw != "" {
		platform, err := domain.ParsePlatform(raw)
		if err != nil {
			return domain.UploadRequest{}, domain.InvalidArgument("platform", raw)
		}
		req.Platform = platform
	}

	force, err := lookupForce(cmd, settings.Force)
	if err != nil {
		return domain.UploadRequest{}, err
	}
	req.Force = force

	return req, nil
}

func lookup(cmd *cobra.Command, flag, setting, fallback string, envKeys ...string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	for _, key := range envKeys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	if setting != "" {
		return setting
	}
	return fallback
}

func lookupForce(cmd *cobra.Command, setting *bool) (bool, error) {
	if cmd.Flags().Changed("force") {
		return cmd.Flags().GetBool("force")
	}
	if raw := strings.TrimSpace(os.Getenv(EnvForce)); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return false, domain.InvalidArgument("force", raw)
		}
		return v, nil
	}
	if setting != nil {
		return *setting, nil
	}
	return false, nil
}
