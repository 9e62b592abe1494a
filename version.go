package citystore

import "fmt"

const (
	major = 0
	minor = 1
	patch = 0
)

// StringVersion returns the version in a human readable form.
func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
