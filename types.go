package obsidian2latex

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Save conflict mode constants.
const (
	SaveModeOverwrite = "overwrite"
	SaveModeBackup    = "backup"
	SaveModeSkip      = "skip"
)

// DefaultFiguresDir is used when no figures directory is configured.
const DefaultFiguresDir = "figures"

// Metadata holds document metadata extracted from frontmatter.
// Fields are set at most once per conversion; a failed extraction leaves
// them at their zero values.
type Metadata struct {
	Title string
	Tags  []string
}

// imageExtensions is the allow-list used when copying attachment assets.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".pdf", ".svg", ".excalidraw.png"}

// ValidateSaveMode checks that mode names a known save conflict policy
// (case-insensitive).
func ValidateSaveMode(mode string) error {
	switch strings.ToLower(mode) {
	case SaveModeOverwrite, SaveModeBackup, SaveModeSkip:
		return nil
	}
	return fmt.Errorf("%w: %q (must be overwrite, backup, or skip)", ErrInvalidSaveMode, mode)
}

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	figuresDir  string
	levelAdjust int
	saveMode    string
	logger      *log.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithFiguresDir sets the figures directory prefixed to every resolved
// image basename and used as the attachment copy target.
func WithFiguresDir(dir string) Option {
	return func(c *Converter) {
		if dir != "" {
			c.cfg.figuresDir = dir
		}
	}
}

// WithLevelAdjust sets the header level adjustment. May be negative;
// resulting depths are clamped, not rejected.
func WithLevelAdjust(n int) Option {
	return func(c *Converter) {
		c.cfg.levelAdjust = n
	}
}

// WithSaveMode sets the save conflict policy.
// Panics on an unknown mode (programmer error; CLI input is validated
// before it reaches here).
func WithSaveMode(mode string) Option {
	if err := ValidateSaveMode(mode); err != nil {
		panic("obsidian2latex: " + err.Error())
	}
	return func(c *Converter) {
		c.cfg.saveMode = strings.ToLower(mode)
	}
}

// WithLogger sets the logger used for pass diagnostics and warnings.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.cfg.logger = l
		}
	}
}
