package adapters

import (
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"artifact-resolver/internal/ports"
	"artifact-resolver/internal/types"
)

// BundleManifestFileName is the manifest file at the root of a
// multi-platform library bundle.
const BundleManifestFileName = "bundle.yaml"

// supportedManifestVersions bounds the manifest format revisions this
// build understands, for both bundle format_version and archive
// schemaVersion.
var supportedManifestVersions = mustSpecifiers(">=1.0, <2.0")

// BundleManifestFileAdapter loads library-bundle manifests through an
// injected filesystem. The filesystem is only ever read.
type BundleManifestFileAdapter struct {
	FS afero.Fs
}

func NewBundleManifestFileAdapter(fs afero.Fs) BundleManifestFileAdapter {
	return BundleManifestFileAdapter{FS: afero.NewReadOnlyFs(fs)}
}

func (a BundleManifestFileAdapter) LoadBundleManifest(bundleRoot string) (types.LibraryBundleManifest, error) {
	path := filepath.Join(bundleRoot, BundleManifestFileName)
	data, err := afero.ReadFile(a.FS, path)
	if err != nil {
		return types.LibraryBundleManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("bundle manifest not found: " + path).
			WithCause(err)
	}
	var manifest types.LibraryBundleManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return types.LibraryBundleManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse bundle manifest yaml").
			WithCause(err)
	}
	if err := checkManifestVersion("format_version", manifest.FormatVersion); err != nil {
		return types.LibraryBundleManifest{}, err
	}
	return manifest, nil
}

// checkManifestVersion rejects manifests whose declared format revision
// is missing, unparseable, or outside the supported range.
func checkManifestVersion(field string, value string) error {
	if value == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest is missing " + field)
	}
	version, err := pep440.Parse(value)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest has malformed " + field + ": " + value).
			WithCause(err)
	}
	if !supportedManifestVersions.Check(version) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported manifest " + field + ": " + value)
	}
	return nil
}

func mustSpecifiers(value string) pep440.Specifiers {
	specifiers, err := pep440.NewSpecifiers(value)
	if err != nil {
		panic(err)
	}
	return specifiers
}

var _ ports.BundleManifestPort = BundleManifestFileAdapter{}
