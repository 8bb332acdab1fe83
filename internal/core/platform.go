package core

// PlatformForOS maps an OS family to the platform vocabulary of the
// library-bundle format. The mapping is total: OS families the format
// does not recognize return ok=false, which is a value, not an error —
// an unmapped triple simply cannot match any library-bundle slice.
func PlatformForOS(osFamily string) (string, bool) {
	switch osFamily {
	case "macosx":
		return "macos", true
	case "ios":
		return "ios", true
	case "tvos":
		return "tvos", true
	case "watchos":
		return "watchos", true
	default:
		return "", false
	}
}

// VariantForEnvironment maps a triple environment to the library-bundle
// platform-variant vocabulary. Same no-mapping semantics as PlatformForOS.
func VariantForEnvironment(environment string) (string, bool) {
	switch environment {
	case "simulator":
		return "simulator", true
	case "macabi":
		return "maccatalyst", true
	default:
		return "", false
	}
}
