package sharedtest

import (
	"os"
	"path/filepath"
	"time"
)

// WithTempFileContaining creates a temporary file with the given content, passes its name to the
// given function, then ensures that the file is deleted.
func WithTempFileContaining(data []byte, f func(filename string)) {
	file, err := os.CreateTemp("", "inngest-test")
	if err != nil {
		panic(err)
	}
	defer os.Remove(file.Name()) //nolint:errcheck
	if _, err := file.Write(data); err != nil {
		panic(err)
	}
	_ = file.Close()
	f(file.Name())
}

// WithTempDir creates a temporary directory, passes its path to the given function, then removes it
// along with anything created inside it.
func WithTempDir(f func(dir string)) {
	dir, err := os.MkdirTemp("", "inngest-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir) //nolint:errcheck
	// EvalSymlinks so that paths reported by file watchers match on systems where the temp
	// directory is a symlink (macOS).
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	f(dir)
}

// ReplaceFileContents overwrites a file, creating it if necessary.
func ReplaceFileContents(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0600)
}

// RequireTrueWithinDuration polls the test function until it returns true or the time limit expires,
// returning false in the latter case.
func RequireTrueWithinDuration(maxTime time.Duration, test func() bool) bool {
	deadline := time.Now().Add(maxTime)
	for {
		if test() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(20 * time.Millisecond)
	}
}
