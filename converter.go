package obsidian2latex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"obsidian2latex/internal/fileutil"
)

// Converter turns one Obsidian markdown document into a LaTeX fragment.
// It carries the per-conversion metadata record, so two concurrent
// conversions need two Converter instances.
type Converter struct {
	cfg  converterConfig
	meta Metadata
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithFiguresDir, WithLevelAdjust).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			figuresDir: DefaultFiguresDir,
			saveMode:   SaveModeOverwrite,
			logger:     log.New(io.Discard),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Metadata returns the metadata extracted during the last Convert call.
func (c *Converter) Metadata() Metadata {
	return c.meta
}

// pass is one text-to-text transformation step in the pipeline.
type pass struct {
	name string
	fn   func(string) string
}

// Convert runs the full pipeline over content and returns the LaTeX
// fragment. sourceName (usually the input file's basename) feeds the
// generated header comment.
//
// Each pass consumes the previous pass's output; a failing pass is logged
// and its input text carried forward unchanged, so conversion always
// produces a result.
func (c *Converter) Convert(content, sourceName string) string {
	c.meta = c.extractMetadata(content)

	passes := []pass{
		{"strip frontmatter", StripFrontmatter},
		{"remove comments", RemoveComments},
		{"convert headers", func(s string) string { return ConvertHeaders(s, c.cfg.levelAdjust) }},
		{"convert lists", ConvertLists},
		{"convert images", func(s string) string { return ConvertImages(s, c.cfg.figuresDir) }},
		{"convert links", ConvertLinks},
		{"convert emphasis", ConvertEmphasis},
		{"convert code blocks", c.convertCodeBlocks},
		{"preserve math", PreserveMath},
	}
	for _, p := range passes {
		content = c.runPass(p, content)
	}

	content = InjectHeaderComment(content, sourceName, c.meta)
	c.cfg.logger.Info("conversion completed", "source", sourceName)
	return content
}

// ConvertFile reads inputPath and converts it.
// The file is decoded as UTF-8, falling back to Windows-1252 when the
// bytes are not valid UTF-8. A missing input is fatal.
func (c *Converter) ConvertFile(inputPath string) (string, error) {
	content, err := fileutil.ReadTextFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return c.Convert(content, filepath.Base(inputPath)), nil
}

// ConvertAndSave converts inputPath, saves the result to outputPath under
// the configured save mode, and copies attachment assets after a
// non-skipped save.
func (c *Converter) ConvertAndSave(inputPath, outputPath string) error {
	latex, err := c.ConvertFile(inputPath)
	if err != nil {
		return err
	}

	wrote, err := c.Save(outputPath, latex)
	if err != nil {
		return err
	}
	if !wrote {
		// Skip mode left the existing file untouched; nothing to copy for.
		return nil
	}

	if err := c.CopyAttachments(inputPath); err != nil {
		c.cfg.logger.Warn("attachment copy incomplete", "error", err)
	}
	return nil
}

// extractMetadata runs the frontmatter extractor fail-soft: a panicking
// parse yields zero-value metadata rather than aborting the conversion.
func (c *Converter) extractMetadata(content string) (meta Metadata) {
	defer func() {
		if r := recover(); r != nil {
			c.cfg.logger.Error("frontmatter extraction failed", "panic", r)
			meta = Metadata{}
		}
	}()
	frontmatter, meta := ExtractFrontmatter(content)
	c.cfg.logger.Debug("extracted frontmatter", "fields", len(frontmatter))
	return meta
}

// runPass applies one pass fail-soft: on panic the pre-pass text is kept
// and conversion proceeds with the remaining passes.
func (c *Converter) runPass(p pass, content string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			c.cfg.logger.Error("pass failed, keeping text unchanged", "pass", p.name, "panic", r)
			out = content
		}
	}()
	out = p.fn(content)
	c.cfg.logger.Debug("pass complete", "pass", p.name)
	return out
}

// convertCodeBlocks wraps ConvertCodeBlocks with a diagnostic for language
// tags the chroma registry does not know.
func (c *Converter) convertCodeBlocks(content string) string {
	for _, lang := range unknownFenceLanguages(content) {
		c.cfg.logger.Debug("unrecognized code fence language", "language", lang)
	}
	return ConvertCodeBlocks(content)
}
