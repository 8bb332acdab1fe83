package adapters

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"artifact-resolver/internal/ports"
	"artifact-resolver/internal/types"
)

// ArchiveManifestFileName is the manifest file at the root of an
// artifact archive.
const ArchiveManifestFileName = "info.json"

// ArchiveManifestFileAdapter loads artifact-archive manifests through an
// injected filesystem. Manifests are hand-authored, so comments and
// trailing commas are tolerated via jsonc before strict decoding.
type ArchiveManifestFileAdapter struct {
	FS afero.Fs
}

func NewArchiveManifestFileAdapter(fs afero.Fs) ArchiveManifestFileAdapter {
	return ArchiveManifestFileAdapter{FS: afero.NewReadOnlyFs(fs)}
}

func (a ArchiveManifestFileAdapter) LoadArchiveManifest(bundleRoot string) (types.ArchiveManifest, error) {
	path := filepath.Join(bundleRoot, ArchiveManifestFileName)
	data, err := afero.ReadFile(a.FS, path)
	if err != nil {
		return types.ArchiveManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("archive manifest not found: " + path).
			WithCause(err)
	}
	var manifest types.ArchiveManifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &manifest); err != nil {
		return types.ArchiveManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse archive manifest json").
			WithCause(err)
	}
	if err := checkManifestVersion("schemaVersion", manifest.SchemaVersion); err != nil {
		return types.ArchiveManifest{}, err
	}
	for name, artifact := range manifest.Artifacts {
		if artifact.Kind != types.ArtifactKindExecutable && artifact.Kind != types.ArtifactKindLibrary {
			return types.ArchiveManifest{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("artifact %q has unknown type %q", name, artifact.Kind))
		}
	}
	return manifest, nil
}

var _ ports.ArchiveManifestPort = ArchiveManifestFileAdapter{}
