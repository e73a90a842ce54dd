// Package paths provides common path handling utilities for srctools.
package paths

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultHeader is the keycode header location, relative to the tools directory.
	DefaultHeader = "../src/keycodes.h"

	// DefaultBackupSuffix is appended to a source file that has been translated.
	DefaultBackupSuffix = ".orig"

	// DefaultTempSuffix names the side-by-side file holding translated content.
	DefaultTempSuffix = ".out"
)

// HeaderPath resolves the keycode header against dir.
// An absolute header is returned unchanged.
func HeaderPath(dir, header string) string {
	if header == "" {
		header = DefaultHeader
	}
	if filepath.IsAbs(header) || dir == "" {
		return filepath.Clean(header)
	}
	return filepath.Join(dir, header)
}

// BackupPath returns where the original source file is kept after translation.
// For example, "src/io.c" becomes "src/io.c.orig".
func BackupPath(srcPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	return srcPath + suffix
}

// TempPath returns the side-by-side file written before the rename swap.
func TempPath(srcPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultTempSuffix
	}
	return srcPath + suffix
}

// IsGenerated reports whether name is one of the files the normalizer
// leaves behind, so that it is not translated a second time.
func IsGenerated(name, backupSuffix, tempSuffix string) bool {
	if backupSuffix == "" {
		backupSuffix = DefaultBackupSuffix
	}
	if tempSuffix == "" {
		tempSuffix = DefaultTempSuffix
	}
	return strings.HasSuffix(name, backupSuffix) || strings.HasSuffix(name, tempSuffix)
}
