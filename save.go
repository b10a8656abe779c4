package obsidian2latex

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"obsidian2latex/internal/fileutil"
)

// Save writes content to path, honoring the configured save conflict mode
// when the target already exists:
//
//   - overwrite: replace unconditionally
//   - backup: copy the existing file aside with a timestamp suffix first
//   - skip: leave the existing file untouched and report success
//
// Parent directories are created if missing. The returned bool reports
// whether the target was written (false under skip).
func (c *Converter) Save(path, content string) (bool, error) {
	if content == "" {
		return false, ErrEmptyContent
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("%w: creating output directory: %v", ErrSaveOutput, err)
		}
	}

	if fileutil.FileExists(path) {
		switch c.cfg.saveMode {
		case SaveModeSkip:
			c.cfg.logger.Info("existing file left untouched", "path", path)
			return false, nil
		case SaveModeBackup:
			backupPath := fileutil.TimestampedBackupPath(path, time.Now())
			if err := fileutil.CopyFile(path, backupPath); err != nil {
				return false, fmt.Errorf("%w: backing up existing file: %v", ErrSaveOutput, err)
			}
			c.cfg.logger.Info("backed up existing file", "backup", backupPath)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("%w: %v", ErrSaveOutput, err)
	}
	c.cfg.logger.Info("latex content saved", "path", path)
	return true, nil
}
