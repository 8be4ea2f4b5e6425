package domain

import "go.trai.ch/zerr"

var (
	// ErrValidation is returned when a required upload argument is missing or invalid.
	ErrValidation = zerr.New("invalid upload arguments")

	// ErrUnsupportedPlatform is returned when the platform is neither android nor apple.
	ErrUnsupportedPlatform = zerr.New("unsupported platform, expected 'android' or 'ios'")

	// ErrUnsupportedHost is returned when Apple symbols are uploaded from a host without dwarfdump.
	ErrUnsupportedHost = zerr.New("apple symbolication files must be uploaded on the darwin platform")

	// ErrNoSymbolFiles is returned when discovery yields no usable debug-symbol bundle.
	ErrNoSymbolFiles = zerr.New("no symbol files found")

	// ErrInspectionSkipped is returned when a bundle's build identifiers cannot be extracted.
	ErrInspectionSkipped = zerr.New("bundle yielded no usable binary")

	// ErrCommandFailed is returned when an external process exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrPackagingFailed is returned when an archive cannot be created for a bundle.
	ErrPackagingFailed = zerr.New("failed to package debug symbols")

	// ErrAssemblyFailed is returned when the multipart request cannot be built.
	ErrAssemblyFailed = zerr.New("failed to assemble upload request")

	// ErrUploadFailed is returned when the ingestion endpoint rejects the upload or cannot be reached.
	ErrUploadFailed = zerr.New("upload failed")

	// ErrSettingsReadFailed is returned when the settings file exists but cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")
)
