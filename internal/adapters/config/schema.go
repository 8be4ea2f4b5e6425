package config

import "go.trai.ch/symup/internal/core/domain"

// Settingsfile represents the structure of the .symup.yaml settings file.
type Settingsfile struct {
	APIHost            string `yaml:"api_host"`
	Path               string `yaml:"path"`
	Token              string `yaml:"token"`
	BundleID           string `yaml:"bundle_id"`
	AppVersion         string `yaml:"app_version"`
	InternalAppVersion string `yaml:"internal_app_version"`
	Platform           string `yaml:"platform"`
	Force              *bool  `yaml:"force"`
}

func (s *Settingsfile) toDomain() *domain.Settings {
	return &domain.Settings{
		APIHost:            s.APIHost,
		Path:               s.Path,
		Token:              s.Token,
		BundleID:           s.BundleID,
		AppVersion:         s.AppVersion,
		InternalAppVersion: s.InternalAppVersion,
		Platform:           s.Platform,
		Force:              s.Force,
	}
}
