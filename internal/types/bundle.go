package types

// LibrarySlice describes one architecture/variant-specific payload inside
// a multi-platform library bundle. Identifier names the slice subdirectory
// under the bundle root; LibraryPath and HeadersPath are relative to that
// subdirectory.
type LibrarySlice struct {
	Identifier      string   `yaml:"identifier"`
	Platform        string   `yaml:"platform"`
	PlatformVariant string   `yaml:"platform_variant,omitempty"`
	Architectures   []string `yaml:"architectures"`
	LibraryPath     string   `yaml:"library_path"`
	HeadersPath     string   `yaml:"headers_path,omitempty"`
}

// LibraryBundleManifest is the decoded bundle.yaml of a library bundle.
// Slice order is declaration order and is significant: the first matching
// slice wins.
type LibraryBundleManifest struct {
	FormatVersion string         `yaml:"format_version"`
	Libraries     []LibrarySlice `yaml:"libraries"`
}
