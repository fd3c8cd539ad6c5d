package path

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/icons/app.png", filepath.Join(home, "icons", "app.png")},
		{"icons/app.png", "icons/app.png"},
		{"/abs/app.png", "/abs/app.png"},
		{"~user/app.png", "~user/app.png"}, // not expandable, left as-is
		{"", ""},
	}

	for _, tt := range tests {
		if got := Expand(tt.input); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	got, err := Resolve("some/relative/file.json")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Resolve() = %q, want absolute path", got)
	}
	if !strings.HasSuffix(got, filepath.Join("some", "relative", "file.json")) {
		t.Errorf("Resolve() = %q, lost the relative suffix", got)
	}
}

func TestInBase(t *testing.T) {
	if got := InBase("samples/app-icon.png", "/opt/iconforge"); got != filepath.Join("/opt/iconforge", "samples", "app-icon.png") {
		t.Errorf("InBase(relative) = %q", got)
	}
	if got := InBase("/etc/icon.png", "/opt/iconforge"); got != "/etc/icon.png" {
		t.Errorf("InBase(absolute) = %q, want path unchanged", got)
	}
}

func TestFindFile(t *testing.T) {
	base := t.TempDir()
	work := t.TempDir()

	mustWrite := func(p string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	baseOnly := filepath.Join(base, "samples", "app-icon.png")
	mustWrite(baseOnly)
	cwdFile := filepath.Join(work, "local.png")
	mustWrite(cwdFile)

	t.Chdir(work)

	t.Run("absolute path", func(t *testing.T) {
		got, err := FindFile(baseOnly, base)
		if err != nil {
			t.Fatalf("FindFile(abs) error = %v", err)
		}
		if got != baseOnly {
			t.Errorf("FindFile(abs) = %q, want %q", got, baseOnly)
		}
	})

	t.Run("working directory wins over base", func(t *testing.T) {
		got, err := FindFile("local.png", base)
		if err != nil {
			t.Fatalf("FindFile(cwd) error = %v", err)
		}
		if got != cwdFile {
			t.Errorf("FindFile(cwd) = %q, want %q", got, cwdFile)
		}
	})

	t.Run("falls back to base directory", func(t *testing.T) {
		got, err := FindFile(filepath.Join("samples", "app-icon.png"), base)
		if err != nil {
			t.Fatalf("FindFile(base fallback) error = %v", err)
		}
		if got != baseOnly {
			t.Errorf("FindFile(base fallback) = %q, want %q", got, baseOnly)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := FindFile("nope.png", base); err == nil {
			t.Error("FindFile(missing) = nil error, want ErrNotFound")
		}
	})

	t.Run("directory does not match", func(t *testing.T) {
		if _, err := FindFile("samples", base); err == nil {
			t.Error("FindFile(directory) = nil error, want ErrNotFound")
		}
	})
}

func TestBaseDir(t *testing.T) {
	t.Setenv("ICONFORGE_DIR", "/custom/base")
	if got := BaseDir(); got != "/custom/base" {
		t.Errorf("BaseDir() with override = %q, want /custom/base", got)
	}

	t.Setenv("ICONFORGE_DIR", "")
	if got := BaseDir(); got == "" {
		t.Error("BaseDir() returned empty string")
	}
}
