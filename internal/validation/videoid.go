package validation

import (
	"fmt"
	"regexp"
)

// videoIDRegex accepts the characters YouTube uses for video IDs. The
// ID is embedded in the temp filename and the object key, so anything
// outside this set is rejected before it reaches the filesystem.
var videoIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateVideoID checks that the ID is safe to use in URLs and paths.
func ValidateVideoID(id string) error {
	if len(id) > 64 || !videoIDRegex.MatchString(id) {
		return fmt.Errorf("videoId contains invalid characters")
	}
	return nil
}
