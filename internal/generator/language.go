package generator

import (
	"fmt"
	"go/token"
	"path"
	"regexp"
	"strings"

	"github.com/vvka-141/projmeta/pkg/projmeta"
)

// Language selects the syntax of the generated file.
type Language string

const (
	LanguageGo     Language = "go"
	LanguageKotlin Language = "kotlin"
)

// Languages lists the supported output languages.
func Languages() []Language {
	return []Language{LanguageGo, LanguageKotlin}
}

// ParseLanguage maps a user-supplied name to a Language. Empty means Go.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "go", "golang":
		return LanguageGo, nil
	case "kotlin", "kt":
		return LanguageKotlin, nil
	}
	names := make([]string, 0, len(Languages()))
	for _, l := range Languages() {
		names = append(names, string(l))
	}
	return "", fmt.Errorf("%w: unsupported language %q (supported: %s)", projmeta.ErrInvalidConfig, s, strings.Join(names, ", "))
}

// DefaultPackage returns the package used when none is configured.
// Kotlin follows the project group, as the JVM convention expects.
func (l Language) DefaultPackage(group string) string {
	if l == LanguageKotlin {
		return group
	}
	return "project"
}

// DefaultDir returns the output directory, relative to the project directory,
// used when none is configured.
func (l Language) DefaultDir(pkg string) string {
	if l == LanguageKotlin {
		return path.Join("build/generated/kotlin", strings.ReplaceAll(pkg, ".", "/"))
	}
	return path.Join("build/generated/go", pkg)
}

// DefaultFile returns the output file name used when none is configured.
func (l Language) DefaultFile() string {
	if l == LanguageKotlin {
		return "Project.kt"
	}
	return "project.go"
}

var kotlinIdentifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// kotlinHardKeywords cannot appear unescaped in a package name.
var kotlinHardKeywords = map[string]bool{
	"as": true, "break": true, "class": true, "continue": true, "do": true,
	"else": true, "false": true, "for": true, "fun": true, "if": true,
	"in": true, "interface": true, "is": true, "null": true, "object": true,
	"package": true, "return": true, "super": true, "this": true, "throw": true,
	"true": true, "try": true, "typealias": true, "typeof": true, "val": true,
	"var": true, "when": true, "while": true,
}

// ValidatePackage checks that pkg is a legal package name for the language.
func (l Language) ValidatePackage(pkg string) error {
	if l == LanguageKotlin {
		for _, part := range strings.Split(pkg, ".") {
			if !kotlinIdentifierPattern.MatchString(part) {
				return fmt.Errorf("%w: invalid Kotlin package %q: %q is not a valid identifier (set --package explicitly)",
					projmeta.ErrInvalidConfig, pkg, part)
			}
			if kotlinHardKeywords[part] {
				return fmt.Errorf("%w: invalid Kotlin package %q: %q is a reserved keyword (set --package explicitly)",
					projmeta.ErrInvalidConfig, pkg, part)
			}
		}
		return nil
	}

	// The blank identifier passes IsIdentifier but is not a legal package name.
	if !token.IsIdentifier(pkg) || pkg == "_" {
		return fmt.Errorf("%w: invalid Go package name %q", projmeta.ErrInvalidConfig, pkg)
	}
	return nil
}
