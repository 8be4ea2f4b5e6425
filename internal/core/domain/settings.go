package domain

// DefaultSettingsFile is the settings file looked up when no --config flag is given.
const DefaultSettingsFile = ".symup.yaml"

// Settings holds optional upload defaults read from a settings file.
// Empty fields are unset. Force is a pointer so an explicit false can be told apart from absence.
type Settings struct {
	APIHost            string
	Path               string
	Token              string
	BundleID           string
	AppVersion         string
	InternalAppVersion string
	Platform           string
	Force              *bool
}
