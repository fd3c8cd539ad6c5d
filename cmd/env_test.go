// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> service layer -> validation pipeline -> generators.
//
// Internal packages carry their own unit tests for the behaviour that is
// awkward to reach through the CLI (probe edge cases, container layouts,
// validator orderings). The tests here prove the wiring: flags arrive at
// the pipeline, pipeline output arrives at the generators, and diagnostics
// reach the user.

package cmd

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the iconforge binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "iconforge-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "iconforge"
		if os.PathSeparator == '\\' {
			binaryName = "iconforge.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state: an isolated working directory,
// home directory and application base directory carrying the bundled
// sample icon.
type testEnv struct {
	t      *testing.T
	dir    string // working directory for command runs
	base   string // application base directory (ICONFORGE_DIR)
	home   string // isolated HOME so global config cannot leak in
	binary string
}

// newTestEnv creates a fully isolated environment for running the binary.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		t:      t,
		dir:    t.TempDir(),
		base:   t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}

	env.writePNG(filepath.Join(env.base, "samples", "app-icon.png"), 64, 64)

	return env
}

// writePNG creates a solid-colour PNG at path.
func (e *testEnv) writePNG(path string, w, h int) {
	e.t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatal(err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: 0x19, G: 0x76, B: 0xD2, A: 0xff})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		e.t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		e.t.Fatal(err)
	}
}

// run executes iconforge with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("iconforge %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes iconforge and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"ICONFORGE_DIR="+e.base,
		"HOME="+e.home,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// exists checks that a path exists under the working directory.
func (e *testEnv) exists(rel string) {
	e.t.Helper()
	_, err := os.Stat(filepath.Join(e.dir, rel))
	assert.NoError(e.t, err, "expected %s to exist", rel)
}

// lines splits trimmed output into lines.
func (e *testEnv) lines(output string) []string {
	return strings.Split(strings.TrimSpace(output), "\n")
}
