package domain

// Stage is a state of the upload pipeline.
type Stage string

const (
	// StageValidating checks the request for required fields.
	StageValidating Stage = "validating"
	// StageResolvingIdentifiers reads app identifiers from bundle metadata.
	StageResolvingIdentifiers Stage = "resolving-identifiers"
	// StageDiscovering enumerates debug-symbol bundles.
	StageDiscovering Stage = "discovering"
	// StageInspecting extracts build identifiers from each bundle.
	StageInspecting Stage = "inspecting"
	// StagePackaging archives each inspected bundle.
	StagePackaging Stage = "packaging"
	// StageAssembling builds the multipart request.
	StageAssembling Stage = "assembling"
	// StageUploading sends the request.
	StageUploading Stage = "uploading"
	// StageDone is reached after a successful upload.
	StageDone Stage = "done"
	// StageFailed is reached when any stage aborts the run.
	StageFailed Stage = "failed"
)

// IsTerminal reports whether no further transition is possible.
func (s Stage) IsTerminal() bool {
	return s == StageDone || s == StageFailed
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}
