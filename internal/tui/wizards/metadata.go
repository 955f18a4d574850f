package wizards

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/internal/tui/components"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

// Field order in the metadata form.
const (
	fieldGroup = iota
	fieldName
	fieldVersion
	fieldDescription
)

// MetadataResult holds the values collected by the metadata form.
type MetadataResult struct {
	Cancelled bool
	Metadata  metadata.ProjectMetadata
}

// NewMetadataForm builds a form prefilled with initial.
func NewMetadataForm(initial metadata.ProjectMetadata) components.Form {
	return components.NewForm("Project metadata",
		components.NewTextField("Group", "com.example").
			WithRequired(true).
			WithValue(initial.Group),
		components.NewTextField("Name", "demo").
			WithRequired(true).
			WithValue(initial.Name),
		components.NewTextField("Version", projmeta.ExampleVersion).
			WithRequired(true).
			WithValidator(validateVersionField).
			WithValue(initial.Version),
		components.NewTextField("Description", "optional").
			WithValue(initial.Description),
	)
}

// validateVersionField keeps the inline message to one line.
func validateVersionField(v string) error {
	if v == "" {
		return nil
	}
	if err := metadata.ValidateVersion(v); err != nil {
		return fmt.Errorf("not a semantic version (example: %s)", projmeta.ExampleVersion)
	}
	return nil
}

// ResultFromForm extracts the collected metadata from a finished form.
func ResultFromForm(f components.Form) MetadataResult {
	if !f.Submitted() {
		return MetadataResult{Cancelled: true}
	}
	return MetadataResult{
		Metadata: metadata.ProjectMetadata{
			Group:       f.FieldValue(fieldGroup),
			Name:        f.FieldValue(fieldName),
			Version:     f.FieldValue(fieldVersion),
			Description: f.FieldValue(fieldDescription),
		},
	}
}

// RunMetadataForm shows the form on the terminal and blocks until it is submitted or cancelled.
func RunMetadataForm(initial metadata.ProjectMetadata) (MetadataResult, error) {
	final, err := tea.NewProgram(NewMetadataForm(initial)).Run()
	if err != nil {
		return MetadataResult{}, fmt.Errorf("metadata form failed: %w", err)
	}

	f, ok := final.(components.Form)
	if !ok {
		return MetadataResult{}, fmt.Errorf("metadata form returned unexpected model %T", final)
	}
	return ResultFromForm(f), nil
}
