package jsxattr

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds batch rendering configuration
type Config struct {
	SourceDir        string   `validate:"required"`               // "web/fixtures"
	Includes         []string `validate:"min=1,dive,required"`    // ["**/*.yaml", "**/*.json"]
	OutputDir        string   `validate:"required"`               // "build/html"
	Extension        string   `validate:"required,excludesall=/"` // "html"
	RespectGitignore bool     // Skip files matched by SourceDir/.gitignore
	Verbose          bool     // Log every document at info level, not only the summary
}

// Result contains batch rendering stats
type Result struct {
	FilesScanned  int
	FilesRendered int
	FilesSkipped  int // Ignored by .gitignore or unsupported extension
	Outputs       []string
	Failed        []FileError
}

// FileError ties a rendering failure to its source document.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Err combines all per-file failures into one error, or returns nil.
// Use multierr.Errors to split it again.
func (r *Result) Err() error {
	var err error
	for _, f := range r.Failed {
		err = multierr.Append(err, f)
	}
	return err
}

// ErrOutputConflict is recorded when two documents map to the same output file,
// e.g. page.yaml and page.json.
var ErrOutputConflict = errors.New("output already written by another document")

// documentExtensions are the element document formats Render understands.
var documentExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

var validate = validator.New()

// Validate checks the configuration before any file is touched.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Render discovers element documents under cfg.SourceDir and writes one HTML
// file per document into cfg.OutputDir, mirroring the source layout.
// A failing document is recorded in Result.Failed and does not stop the batch.
func Render(cfg Config, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("batch")
	detail := log.Debug
	if cfg.Verbose {
		detail = log.Info
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}

	// 1. Scan documents
	files, err := scanDocuments(cfg.SourceDir, cfg.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = len(files)
	log.Debug("Found documents", zap.Int("count", len(files)), zap.String("source", cfg.SourceDir))

	var gi *ignore.GitIgnore
	if cfg.RespectGitignore {
		gi = loadGitIgnore(cfg.SourceDir)
	}

	// 2. Render each document
	claimed := make(map[string]string, len(files))
	for _, file := range files {
		rel, err := filepath.Rel(cfg.SourceDir, file)
		if err != nil {
			rel = filepath.Base(file)
		}

		if shouldSkipFile(rel, gi) {
			detail("Skipping", zap.String("file", file))
			result.FilesSkipped++
			continue
		}

		out := filepath.Join(cfg.OutputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+"."+cfg.Extension)
		if owner, ok := claimed[out]; ok {
			err := fmt.Errorf("%w: %s is rendered from %s", ErrOutputConflict, out, owner)
			detail("Render failed", zap.String("file", file), zap.Error(err))
			result.Failed = append(result.Failed, FileError{Path: file, Err: err})
			continue
		}
		claimed[out] = file

		if err := renderFile(file, out); err != nil {
			detail("Render failed", zap.String("file", file), zap.Error(err))
			result.Failed = append(result.Failed, FileError{Path: file, Err: err})
			continue
		}

		detail("Rendered", zap.String("file", file), zap.String("output", out))
		result.FilesRendered++
		result.Outputs = append(result.Outputs, out)
	}

	log.Info("Batch finished",
		zap.Int("rendered", result.FilesRendered),
		zap.Int("skipped", result.FilesSkipped),
		zap.Int("failed", len(result.Failed)))

	return result, nil
}

// scanDocuments finds all files matching includes
func scanDocuments(sourceDir string, includes []string) ([]string, error) {
	var files []string

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	// Remove duplicates
	seen := make(map[string]bool)
	unique := make([]string, 0, len(files))
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}

	return unique, nil
}

// loadGitIgnore compiles sourceDir/.gitignore.
// A missing .gitignore is fine and yields nil.
func loadGitIgnore(sourceDir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(sourceDir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile filters by extension first, then by .gitignore.
func shouldSkipFile(rel string, gi *ignore.GitIgnore) bool {
	if !documentExtensions[strings.ToLower(filepath.Ext(rel))] {
		return true
	}
	return gi != nil && gi.MatchesPath(filepath.ToSlash(rel))
}

// renderFile decodes one document and writes its HTML to out
func renderFile(path, out string) error {
	// #nosec G304 - path comes from configured globs
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	elements, err := DecodeElements(data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, el := range elements {
		if err := RenderElement(&buf, el); err != nil {
			return err
		}
		buf.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// ErrEmptyDocument is returned for documents without any element.
var ErrEmptyDocument = errors.New("document contains no elements")

// DecodeElements decodes a YAML or JSON document holding either one element
// mapping or a sequence of them.
func DecodeElements(data []byte) ([]*Element, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		el := &Element{}
		if err := root.Decode(el); err != nil {
			return nil, fmt.Errorf("decode element: %w", err)
		}
		return []*Element{el}, nil
	case yaml.SequenceNode:
		var elements []*Element
		if err := root.Decode(&elements); err != nil {
			return nil, fmt.Errorf("decode elements: %w", err)
		}
		if len(elements) == 0 {
			return nil, ErrEmptyDocument
		}
		return elements, nil
	default:
		return nil, fmt.Errorf("decode document: expected element mapping or sequence, got %s", kindName(root.Kind))
	}
}
