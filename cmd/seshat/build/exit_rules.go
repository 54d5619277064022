package build

import (
	"fmt"
	"os"
)

const (
	exitCodeSuccess    = 0
	exitCodeInvalidDir = 1
)

// buildExitError couples an error message with the process exit code the
// CLI should use. main() picks the code up through the ExitCode method.
type buildExitError struct {
	code int
	msg  string
}

func (e buildExitError) Error() string { return e.msg }
func (e buildExitError) ExitCode() int { return e.code }

// validateDir fails when the path does not resolve to an existing directory.
// Nothing is written to stdout in that case; the scan never starts. The
// message carries the same ERROR: prefix as the per-file diagnostics.
func validateDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return buildExitError{code: exitCodeInvalidDir, msg: fmt.Sprintf("ERROR: invalid directory: %s", dir)}
	}
	return nil
}
