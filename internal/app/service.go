package app

import (
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"artifact-resolver/internal/adapters"
	"artifact-resolver/internal/ports"
	"artifact-resolver/internal/types"
)

type Service struct {
	Bundles  ports.BundleManifestPort
	Archives ports.ArchiveManifestPort
	FS       afero.Fs
}

func NewService(fs afero.Fs) Service {
	return Service{
		Bundles:  adapters.NewBundleManifestFileAdapter(fs),
		Archives: adapters.NewArchiveManifestFileAdapter(fs),
		FS:       afero.NewReadOnlyFs(fs),
	}
}

// detectBundleKind decides which of the two manifest schemas a bundle
// root carries by which manifest file is present. A root with neither is
// not a bundle at all.
func (s Service) detectBundleKind(bundleRoot string) (types.BundleKind, error) {
	if ok, _ := afero.Exists(s.FS, filepath.Join(bundleRoot, adapters.BundleManifestFileName)); ok {
		return types.BundleKindLibraryBundle, nil
	}
	if ok, _ := afero.Exists(s.FS, filepath.Join(bundleRoot, adapters.ArchiveManifestFileName)); ok {
		return types.BundleKindArtifactArchive, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("no bundle manifest found under " + bundleRoot)
}
