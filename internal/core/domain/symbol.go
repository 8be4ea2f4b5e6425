package domain

import "go.trai.ch/zerr"

// DebugSymbolInfo describes one inspected debug-symbol bundle.
type DebugSymbolInfo struct {
	// Path is the bundle location.
	Path string
	// Binary is the path of the binary inside the bundle, as reported by the inspector.
	Binary string
	// Arch is the CPU architecture of the binary.
	Arch string
	// UUID is the build identifier.
	UUID string
}

// NewDebugSymbolInfo builds a DebugSymbolInfo, rejecting records without both a UUID and an arch.
func NewDebugSymbolInfo(path, binary, arch, uuid string) (*DebugSymbolInfo, error) {
	if uuid == "" || arch == "" || binary == "" {
		return nil, zerr.With(zerr.Wrap(ErrInspectionSkipped, "incomplete inspection record"), "path", path)
	}
	return &DebugSymbolInfo{
		Path:   path,
		Binary: binary,
		Arch:   arch,
		UUID:   uuid,
	}, nil
}

// PackagedArtifact is the on-disk archive of a DebugSymbolInfo.
type PackagedArtifact struct {
	UUID        string
	ArchivePath string
	// Checksum is the xxhash64 of the archive bytes, hex encoded.
	Checksum string
}
