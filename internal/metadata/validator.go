package metadata

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"

	"github.com/vvka-141/projmeta/pkg/projmeta"
)

// versionPattern is the Semantic Versioning 2.0.0 grammar.
var versionPattern = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Validate checks every field of m and returns nil when the metadata can be rendered.
// All failures are reported together; each one is a *ValidationError.
func Validate(m ProjectMetadata) error {
	var errs []error

	if strings.TrimSpace(m.Group) == "" {
		errs = append(errs, &ValidationError{
			Field:   "group",
			Value:   m.Group,
			Message: "group is required and cannot be empty or whitespace-only",
			Hint:    "Provide a group (example: 'group: com.example' in " + projmeta.ConfigFileName + ")",
		})
	}

	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, &ValidationError{
			Field:   "name",
			Value:   m.Name,
			Message: "name is required and cannot be empty or whitespace-only",
			Hint:    "Provide a name (example: 'name: demo' in " + projmeta.ConfigFileName + ")",
		})
	}

	if err := ValidateVersion(m.Version); err != nil {
		errs = append(errs, err)
	}

	for _, f := range []struct{ field, value string }{
		{"group", m.Group},
		{"name", m.Name},
		{"description", m.Description},
	} {
		if !utf8.ValidString(f.value) {
			errs = append(errs, &ValidationError{
				Field:   f.field,
				Value:   f.value,
				Message: "value is not valid UTF-8",
				Hint:    "Check the encoding of " + projmeta.ConfigFileName + " and any env files",
			})
		}
	}

	return errors.Join(errs...)
}

// ValidateVersion checks v against the semantic version grammar.
func ValidateVersion(v string) error {
	if versionPattern.MatchString(v) {
		return nil
	}
	return &ValidationError{
		Field:   "version",
		Value:   v,
		Message: "expected MAJOR.MINOR.PATCH[-prerelease][+buildmetadata]",
		Hint:    fmt.Sprintf("Provide a valid version (example: 'version: %s')", projmeta.ExampleVersion),
	}
}

// ParseVersion validates v and splits it into its components.
func ParseVersion(v string) (*VersionInfo, error) {
	if err := ValidateVersion(v); err != nil {
		return nil, err
	}

	sv, err := semver.StrictNewVersion(v)
	if err != nil {
		// The grammar allows numeric components wider than uint64.
		return nil, &ValidationError{
			Field:   "version",
			Value:   v,
			Message: err.Error(),
			Hint:    fmt.Sprintf("Provide a valid version (example: 'version: %s')", projmeta.ExampleVersion),
		}
	}

	return &VersionInfo{
		Original:   v,
		Major:      sv.Major(),
		Minor:      sv.Minor(),
		Patch:      sv.Patch(),
		Prerelease: sv.Prerelease(),
		Build:      sv.Metadata(),
	}, nil
}
