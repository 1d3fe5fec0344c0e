package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	enverrors "github.com/envdrift/envdrift/internal/errors"
	"github.com/envdrift/envdrift/pkg/types"
)

// manifestFile is the project metadata file declaring scripts and
// dependencies.
const manifestFile = "package.json"

// manifest holds the three sections of the project manifest this tool cares
// about. Script declaration order is preserved.
type manifest struct {
	Scripts         types.ScriptMap   `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// readManifest parses the manifest at root. An absent manifest is normal and
// yields empty sections. A manifest that exists but is malformed is fatal:
// it returns a *errors.ManifestParseError so the corruption surfaces instead
// of silently defaulting.
func readManifest(root string) (*manifest, error) {
	path := filepath.Join(root, manifestFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return emptyManifest(), nil
	}
	if err != nil {
		return nil, err
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &enverrors.ManifestParseError{Path: path, Err: err}
	}

	// Sections absent from the manifest default to empty.
	if m.Dependencies == nil {
		m.Dependencies = map[string]string{}
	}
	if m.DevDependencies == nil {
		m.DevDependencies = map[string]string{}
	}

	return &m, nil
}

func emptyManifest() *manifest {
	return &manifest{
		Scripts:         types.NewScriptMap(),
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}
}
