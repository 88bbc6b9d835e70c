// Package fs provides file-based loading and storage for htmlgrade.
package fs

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlgrade"
	"gopkg.in/yaml.v3"
)

// Ensure ChecksLoader implements htmlgrade.ChecksLoader at compile time.
var _ htmlgrade.ChecksLoader = (*ChecksLoader)(nil)

// ChecksLoader reads selector lists from JSON or YAML files.
// Files ending in .yaml or .yml are decoded as YAML; everything else as JSON.
type ChecksLoader struct{}

// NewChecksLoader creates a new ChecksLoader.
func NewChecksLoader() *ChecksLoader {
	return &ChecksLoader{}
}

// LoadChecks reads the selector list at path.
func (l *ChecksLoader) LoadChecks(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, htmlgrade.Errorf(htmlgrade.ENOTFOUND, "%s does not exist", path)
	} else if err != nil {
		return nil, htmlgrade.Errorf(htmlgrade.EINVALID, "failed to read %s: %v", path, err)
	}

	var checks []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &checks)
	default:
		err = json.Unmarshal(b, &checks)
	}
	if err != nil {
		return nil, htmlgrade.Errorf(htmlgrade.EINVALID, "malformed checks file %s: %v", path, err)
	}

	// null, an empty YAML document and similar decode without error but are
	// not lists.
	if checks == nil {
		return nil, htmlgrade.Errorf(htmlgrade.EINVALID, "malformed checks file %s: expected a list of selectors", path)
	}

	return checks, nil
}

// Exists returns ENOTFOUND unless path names an existing file.
func Exists(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return htmlgrade.Errorf(htmlgrade.ENOTFOUND, "%s does not exist", path)
	} else if err != nil {
		return htmlgrade.Errorf(htmlgrade.EINVALID, "failed to stat %s: %v", path, err)
	}
	if info.IsDir() {
		return htmlgrade.Errorf(htmlgrade.EINVALID, "%s is a directory", path)
	}
	return nil
}
