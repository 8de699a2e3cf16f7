package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "netctl2iwd/internal/errors"
	"netctl2iwd/internal/netctl"
)

// Options controls a batch conversion.
type Options struct {
	// OutputDir is the directory iwd network files are written into.
	OutputDir string

	// DryRun parses profiles and computes destination names but writes
	// nothing.
	DryRun bool
}

// Result is the outcome of converting a single profile.
type Result struct {
	// Input is the source profile path.
	Input string

	// Dest is the destination file name, relative to the output
	// directory. Empty when the profile could not be parsed.
	Dest string

	// Err is nil on success.
	Err error
}

// One converts a single netctl profile into an iwd network file under
// opts.OutputDir and returns the destination file name.
//
// The destination is created exclusively: an existing file makes the
// conversion fail with ErrFileExists and is left untouched. The file is
// restricted to owner read/write before any content is written, since it
// may contain credentials. A profile that fails to parse creates no file
// at all.
func One(inputPath string, opts Options) (string, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return "", classify(err)
	}
	defer in.Close()

	n, err := netctl.ParseProfile(in)
	if err != nil {
		return "", err
	}

	name := n.FileName()
	if opts.DryRun {
		return name, nil
	}

	doc, err := n.ConfigDocument()
	if err != nil {
		return name, classify(err)
	}

	destPath := filepath.Join(opts.OutputDir, name)
	// O_EXCL makes create-if-absent atomic; no separate existence check.
	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return name, classify(err)
	}
	defer out.Close()

	// The mode passed to OpenFile is subject to the umask; chmod again so
	// the 0600 restriction holds before secrets hit the disk.
	if err := out.Chmod(0o600); err != nil {
		return name, classify(err)
	}

	if _, err := out.Write(doc); err != nil {
		return name, classify(err)
	}
	if err := out.Close(); err != nil {
		return name, classify(err)
	}
	return name, nil
}

// All converts each profile independently. A failed file is recorded and
// processing continues with the next one; nothing already written is
// rolled back.
func All(inputPaths []string, opts Options) []Result {
	results := make([]Result, 0, len(inputPaths))
	for _, input := range inputPaths {
		dest, err := One(input, opts)
		results = append(results, Result{Input: input, Dest: dest, Err: err})
	}
	return results
}

// classify maps a platform I/O error onto the closed error set. The
// original cause is kept in the chain for --debug output, but callers
// match on the sentinel.
func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", kerrors.ErrPermissionDenied, err)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%w: %w", kerrors.ErrFileExists, err)
	default:
		return fmt.Errorf("%w: %w", kerrors.ErrOS, err)
	}
}
