package paths

import (
	"path/filepath"
	"testing"
)

func TestHeaderPath(t *testing.T) {
	tests := []struct {
		dir      string
		header   string
		expected string
	}{
		{"/repo/tools", "", filepath.Join("/repo", "src", "keycodes.h")},
		{"/repo/tools", "../src/keycodes.h", filepath.Join("/repo", "src", "keycodes.h")},
		{"/repo/tools", "/abs/keys.h", filepath.Clean("/abs/keys.h")},
		{"", "keys.h", "keys.h"},
	}

	for _, tt := range tests {
		result := HeaderPath(tt.dir, tt.header)
		if result != tt.expected {
			t.Errorf("HeaderPath(%q, %q) = %q, expected %q", tt.dir, tt.header, result, tt.expected)
		}
	}
}

func TestBackupPath(t *testing.T) {
	tests := []struct {
		input    string
		suffix   string
		expected string
	}{
		{"io.c", "", "io.c.orig"},
		{"src/text.c", "", "src/text.c.orig"},
		{"src/text.c", ".bak", "src/text.c.bak"},
	}

	for _, tt := range tests {
		result := BackupPath(tt.input, tt.suffix)
		if result != tt.expected {
			t.Errorf("BackupPath(%q, %q) = %q, expected %q", tt.input, tt.suffix, result, tt.expected)
		}
	}
}

func TestTempPath(t *testing.T) {
	tests := []struct {
		input    string
		suffix   string
		expected string
	}{
		{"io.c", "", "io.c.out"},
		{"src/setup.c", ".tmp", "src/setup.c.tmp"},
	}

	for _, tt := range tests {
		result := TempPath(tt.input, tt.suffix)
		if result != tt.expected {
			t.Errorf("TempPath(%q, %q) = %q, expected %q", tt.input, tt.suffix, result, tt.expected)
		}
	}
}

func TestIsGenerated(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"io.c", false},
		{"io.c.orig", true},
		{"io.c.out", true},
		{"keycodes.h", false},
	}

	for _, tt := range tests {
		result := IsGenerated(tt.name, "", "")
		if result != tt.expected {
			t.Errorf("IsGenerated(%q) = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}
