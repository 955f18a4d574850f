// Package metadata models the project metadata embedded into generated files
// and validates it before anything is written.
//
// # Fields
//
// A ProjectMetadata value carries four strings:
//   - Group: required, e.g. "com.example"
//   - Name: required, e.g. "demo"
//   - Version: required, must follow Semantic Versioning 2.0.0
//   - Description: optional, empty by default
//
// # Version Grammar
//
// Versions are MAJOR.MINOR.PATCH with an optional -prerelease and an optional
// +buildmetadata suffix. Numeric components carry no leading zeros, and suffix
// identifiers use only ASCII letters, digits and hyphens, separated by dots:
//
//	1.2.3
//	1.0.0-beta.1+build.5
//	0.1.0+20130313144700
//
// "1.0", "v1.0.0" and "1.0.0.0" are rejected.
//
// # Example Usage
//
//	meta := metadata.ProjectMetadata{Group: "com.example", Name: "demo", Version: "1.2.3"}
//	if err := metadata.Validate(meta); err != nil {
//	    var vErr *metadata.ValidationError
//	    if errors.As(err, &vErr) {
//	        fmt.Println(vErr.Hint)
//	    }
//	}
package metadata
