package metadata

// ProjectMetadata is the set of values embedded into the generated source file.
// It is built once per invocation and treated as immutable.
type ProjectMetadata struct {
	Group       string `yaml:"group" json:"group"`
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description" json:"description"`
}

// VersionInfo holds the parsed components of a valid semantic version.
type VersionInfo struct {
	Original   string `json:"original"`
	Major      uint64 `json:"major"`
	Minor      uint64 `json:"minor"`
	Patch      uint64 `json:"patch"`
	Prerelease string `json:"prerelease,omitempty"`
	Build      string `json:"build,omitempty"`
}

// IsPrerelease reports whether the version carries a pre-release suffix.
func (v VersionInfo) IsPrerelease() bool {
	return v.Prerelease != ""
}
