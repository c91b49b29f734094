package catalog

import (
	"encoding/json"
	"os"
)

// CurrentVersion reads the version stamped on the document at path. A
// missing, unreadable, or malformed artifact, or one without a version
// field, reads as version 0 so that regeneration always succeeds and simply
// restarts the sequence. The file is never modified.
func CurrentVersion(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	var doc struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0
	}
	if doc.Version < 0 {
		return 0
	}
	return doc.Version
}

// NextVersion returns the version to stamp on the next write of the
// document at path.
func NextVersion(path string) int {
	return CurrentVersion(path) + 1
}
