package cdk

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/cycl/pkg/errors"
)

// OutDirName is the directory name and marker file name of a cloud assembly.
const OutDirName = "cdk.out"

// ValidateOutDir resolves path to a cloud assembly directory.
//
// path may point at the cdk.out directory itself or at the project
// directory containing it. The returned path is absolute. Errors carry the
// INVALID_CDK_OUT code.
func ValidateOutDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidCdkOut, err, "resolve %s", path)
	}
	abs = resolveLinks(abs)

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", errors.New(errors.ErrCodeInvalidCdkOut,
			"Provided path does not exist or is not a directory: %s", abs)
	}

	if filepath.Base(abs) != OutDirName {
		abs = filepath.Join(abs, OutDirName)
	}
	if _, err := os.Stat(filepath.Join(abs, OutDirName)); err != nil {
		return "", errors.New(errors.ErrCodeInvalidCdkOut,
			"File named cdk.out not found in %s. Did you run `cdk synth`?", abs)
	}
	return abs, nil
}

func resolveLinks(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
