package obsidian2latex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"obsidian2latex/internal/fileutil"
)

// CopyAttachments searches the candidate attachment directories next to
// inputPath and copies every allow-listed image file into the configured
// figures directory, creating it if absent. Same-named targets are
// silently overwritten; per-file failures are logged and do not abort the
// batch.
func (c *Converter) CopyAttachments(inputPath string) error {
	figuresDir, err := filepath.Abs(c.cfg.figuresDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFiguresDir, err)
	}
	if err := os.MkdirAll(figuresDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrFiguresDir, err)
	}

	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		absInput = inputPath
	}
	inputDir := filepath.Dir(absInput)

	candidates := []string{
		filepath.Join(inputDir, "attachments"),
		filepath.Join(inputDir, "assets"),
		filepath.Join(inputDir, "images"),
		filepath.Join(filepath.Dir(inputDir), "attachments"),
	}

	found := false
	for _, dir := range candidates {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		found = true
		c.cfg.logger.Info("found attachments", "dir", dir)

		for _, entry := range entries {
			if entry.IsDir() || !isImageFile(entry.Name()) {
				continue
			}
			src := filepath.Join(dir, entry.Name())
			dst := filepath.Join(figuresDir, entry.Name())
			if err := fileutil.CopyFile(src, dst); err != nil {
				c.cfg.logger.Warn("failed to copy attachment", "file", entry.Name(), "error", err)
				continue
			}
			c.cfg.logger.Debug("copied attachment", "file", entry.Name())
		}
	}

	if !found {
		c.cfg.logger.Warn("no attachments directory found; images may need manual copying")
	}
	return nil
}

// isImageFile matches name against the attachment extension allow-list,
// case-insensitively.
func isImageFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
