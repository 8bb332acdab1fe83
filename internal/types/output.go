package types

// LibraryInfo describes the resolved library for a single triple. All
// paths are absolute. ModuleMapPath is empty when the source schema does
// not declare one (library bundles never do).
type LibraryInfo struct {
	LibraryPath   string   `yaml:"library_path"`
	HeaderPaths   []string `yaml:"header_paths,omitempty"`
	ModuleMapPath string   `yaml:"module_map_path,omitempty"`
}

// ExecutableInfo describes one resolved executable artifact.
// SupportedTriples holds only the declared triples that matched the
// requested one, not the variant's full list.
type ExecutableInfo struct {
	Name             string   `yaml:"name"`
	ExecutablePath   string   `yaml:"executable_path"`
	SupportedTriples []Triple `yaml:"supported_triples"`
}
