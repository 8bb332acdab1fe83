package types

// Triple identifies a build target: architecture, vendor, OS family,
// optional OS version, and optional environment (e.g. simulator).
// The canonical string form is arch-vendor-os[version][-environment],
// such as "arm64-apple-macosx12.0" or "x86_64-apple-ios13.0-simulator".
type Triple struct {
	Arch        string
	Vendor      string
	OS          string
	Version     string
	Environment string
}

func (t Triple) String() string {
	out := t.Arch + "-" + t.Vendor + "-" + t.OS + t.Version
	if t.Environment != "" {
		out += "-" + t.Environment
	}
	return out
}

// MarshalYAML renders a triple in its canonical string form rather than
// as a struct.
func (t Triple) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
