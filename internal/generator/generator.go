package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vvka-141/projmeta/internal/checksum"
	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

// Options controls where and how the metadata file is generated.
// Zero values fall back to the language defaults.
type Options struct {
	Language   Language
	Package    string
	Dir        string // Output directory; relative paths resolve against ProjectDir
	File       string // Output file name inside Dir
	ProjectDir string
	Force      bool // Write even when the stamp says the output is up to date
	DryRun     bool // Render only; never touch the filesystem
}

// Result describes the outcome of a generation run.
type Result struct {
	Path      string
	Content   []byte
	InputHash string
	Skipped   bool // Output already matched the inputs
	Written   bool
}

// Generator validates metadata and writes the generated source file.
type Generator struct {
	logger     projmeta.Logger
	calculator checksum.Calculator
}

// New creates a Generator that reports progress through logger.
func New(logger projmeta.Logger) *Generator {
	return &Generator{
		logger:     logger,
		calculator: checksum.New(),
	}
}

// Resolve fills unset options with the language defaults and returns the output path.
func (o Options) Resolve(meta metadata.ProjectMetadata) (Options, string, error) {
	if o.Language == "" {
		o.Language = LanguageGo
	}
	if _, err := ParseLanguage(string(o.Language)); err != nil {
		return o, "", err
	}
	if o.Package == "" {
		o.Package = o.Language.DefaultPackage(meta.Group)
	}
	if err := o.Language.ValidatePackage(o.Package); err != nil {
		return o, "", err
	}
	if o.Dir == "" {
		o.Dir = filepath.FromSlash(o.Language.DefaultDir(o.Package))
	}
	if o.File == "" {
		o.File = o.Language.DefaultFile()
	}
	if filepath.Base(o.File) != o.File {
		return o, "", fmt.Errorf("%w: output file %q must be a plain file name (use the output directory for paths)",
			projmeta.ErrInvalidConfig, o.File)
	}

	dir := o.Dir
	if !filepath.IsAbs(dir) && o.ProjectDir != "" {
		dir = filepath.Join(o.ProjectDir, dir)
	}
	return o, filepath.Join(dir, o.File), nil
}

// Generate validates meta, renders it, and writes it to the resolved output path.
func (g *Generator) Generate(meta metadata.ProjectMetadata, opts Options) (*Result, error) {
	if err := metadata.Validate(meta); err != nil {
		return nil, err
	}

	opts, outputPath, err := opts.Resolve(meta)
	if err != nil {
		return nil, err
	}

	content, err := Render(opts.Language, opts.Package, meta)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Path:      outputPath,
		Content:   content,
		InputHash: g.inputHash(meta, opts, outputPath),
	}

	if opts.DryRun {
		g.logger.Verbose("Dry run: %s not written", outputPath)
		return result, nil
	}

	g.logger.Info("Generating project metadata...")
	g.logger.Info("Project group: %s", meta.Group)
	g.logger.Info("Project name: %s", meta.Name)
	g.logger.Info("Project version: %s", meta.Version)
	g.logger.Info("Project description: %s", meta.Description)

	stampPath := StampPath(outputPath)
	if !opts.Force && g.upToDate(stampPath, outputPath, result.InputHash) {
		g.logger.Info("%s is up to date", outputPath)
		result.Skipped = true
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	result.Written = true

	stamp := Stamp{
		FormatVersion:  projmeta.FormatVersion,
		InputHash:      result.InputHash,
		OutputChecksum: g.calculator.CalculateRaw(content),
	}
	if err := writeStamp(stampPath, stamp); err != nil {
		return nil, fmt.Errorf("failed to write stamp %s: %w", stampPath, err)
	}

	g.logger.Info("Wrote %s", outputPath)
	return result, nil
}

func (g *Generator) inputHash(meta metadata.ProjectMetadata, opts Options, outputPath string) string {
	return g.calculator.CalculateFields(
		strconv.Itoa(projmeta.FormatVersion),
		string(opts.Language),
		opts.Package,
		filepath.ToSlash(outputPath),
		meta.Group,
		meta.Name,
		meta.Version,
		meta.Description,
	)
}

// upToDate reports whether the stamp matches inputHash and the output is intact.
func (g *Generator) upToDate(stampPath, outputPath, inputHash string) bool {
	stamp, err := readStamp(stampPath)
	if err != nil {
		g.logger.Verbose("Ignoring stamp: %v", err)
		return false
	}
	if stamp == nil || stamp.FormatVersion != projmeta.FormatVersion || stamp.InputHash != inputHash {
		return false
	}

	existing, err := os.ReadFile(outputPath)
	if err != nil {
		return false
	}
	return g.calculator.CalculateRaw(existing) == stamp.OutputChecksum
}
