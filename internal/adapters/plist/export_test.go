package plist

// SortCandidates exposes the Info.plist candidate ordering for testing purposes only.
func SortCandidates(paths []string) {
	sortCandidates(paths)
}
