package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	gitignoreName = ".gitignore"
	gitignorePerm = 0o644
)

// projectIgnores are the entries under .carboncalc/ that stay out of version
// control. config.yaml is shared with the team and is not listed.
//
//nolint:gochecknoglobals // Constant lookup table.
var projectIgnores = []string{
	"*.log",    // file logging (logging.file)
	"reports/", // rendered and JSON reports
}

// GitignoreContent returns the .gitignore that config init writes into a
// project's .carboncalc/ directory.
func GitignoreContent() string {
	var b strings.Builder
	b.WriteString("# carboncalc project settings: config.yaml is tracked, run output is not.\n")
	for _, entry := range projectIgnores {
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	return b.String()
}

// EnsureGitignore writes GitignoreContent into dir, creating dir if needed.
// A .gitignore already in dir is left as is and EnsureGitignore returns false.
func EnsureGitignore(dir string) (bool, error) {
	path := filepath.Join(dir, gitignoreName)

	switch _, err := os.Stat(path); {
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.MkdirAll(dir, configDirPerm); err != nil {
		return false, fmt.Errorf("creating project settings directory %s: %w", dir, err)
	}

	//nolint:gosec // .gitignore is meant to be readable by every tool in the checkout.
	if err := os.WriteFile(path, []byte(GitignoreContent()), gitignorePerm); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
