package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const missingLine = "Failed to generate src/block.h, you're probably missing texture files.\n"

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, data := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestRunSuccess(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"blocks.txt":                "stone\n",
		"textures/stone-top.png":    "",
		"textures/stone-side.png":   "",
		"textures/stone-bottom.png": "",
		"src/.keep":                 "",
	})

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-root", root}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit status %d, want 0", code)
	}
	if _, err := os.Stat(filepath.Join(root, "src", "block.h")); err != nil {
		t.Fatalf("header not written: %v", err)
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Fatalf("expected no output on success, stdout %q stderr %q", stdout.String(), stderr.String())
	}
}

func TestRunSuccessWithBlankLines(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"blocks.txt":                "stone\n\n",
		"textures/stone-top.png":    "",
		"textures/stone-side.png":   "",
		"textures/stone-bottom.png": "",
		"textures/-top.png":         "",
		"textures/-side.png":        "",
		"textures/-bottom.png":      "",
		"src/.keep":                 "",
	})

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-root", root}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit status %d, want 0", code)
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Fatalf("expected no output on success, stdout %q stderr %q", stdout.String(), stderr.String())
	}
}

func TestRunMissingTexture(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"blocks.txt":                "stone\ndirt\n",
		"textures/stone-top.png":    "",
		"textures/stone-side.png":   "",
		"textures/stone-bottom.png": "",
		"textures/dirt-side.png":    "",
		"textures/dirt-bottom.png":  "",
		"src/.keep":                 "",
	})

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-root", root}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit status %d, want 1", code)
	}
	if _, err := os.Stat(filepath.Join(root, "src", "block.h")); !os.IsNotExist(err) {
		t.Fatalf("header must not be written, stat: %v", err)
	}
	if stdout.String() != missingLine {
		t.Fatalf("stdout %q, want %q", stdout.String(), missingLine)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunMissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-root", t.TempDir()}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit status %d, want 1", code)
	}
	if stdout.String() != missingLine {
		t.Fatalf("stdout %q, want %q", stdout.String(), missingLine)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunFailureNamesOutput(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"blocks.txt": "stone\n"})

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-root", root, "-output", "gen/other.h"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit status %d, want 1", code)
	}
	if strings.Count(stdout.String(), "\n") != 1 || !strings.Contains(stdout.String(), "gen/other.h") {
		t.Fatalf("expected one line naming gen/other.h, got %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "src/block.h") {
		t.Fatalf("message names the default output: %q", stdout.String())
	}
}

func TestRunConfigOverrides(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"blockgen.toml":          "input = \"defs/list.txt\"\noutput = \"out.h\"\n\n[format]\nguard = \"BLOCKS_H\"\n",
		"defs/list.txt":          "sand\n",
		"textures/sand-top.png":  "",
		"textures/sand-side.png": "",
	})

	var stdout bytes.Buffer
	if code := run([]string{"-root", root}, &stdout, &bytes.Buffer{}); code != 1 {
		t.Fatalf("exit status %d with missing bottom texture, want 1", code)
	}
	if !strings.Contains(stdout.String(), "out.h") {
		t.Fatalf("message does not name out.h: %q", stdout.String())
	}

	writeFiles(t, root, map[string]string{"textures/sand-bottom.png": ""})
	if code := run([]string{"-root", root}, &bytes.Buffer{}, &bytes.Buffer{}); code != 0 {
		t.Fatalf("exit status %d, want 0", code)
	}
	out, err := os.ReadFile(filepath.Join(root, "out.h"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if want := "#ifndef BLOCKS_H\n"; string(out[:len(want)]) != want {
		t.Fatalf("guard not applied:\n%s", out)
	}
}

func TestRunLint(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"blocks.txt":                "stone\n",
		"textures/stone-top.png":    "",
		"textures/stone-side.png":   "",
		"textures/stone-bottom.png": "",
	})
	var stderr bytes.Buffer
	if code := run([]string{"-root", root, "-lint"}, &bytes.Buffer{}, &stderr); code != 0 {
		t.Fatalf("exit status %d, want 0", code)
	}

	writeFiles(t, root, map[string]string{"blocks.txt": "stone\nAir\n"})
	if code := run([]string{"-root", root, "-lint"}, &bytes.Buffer{}, &stderr); code != 1 {
		t.Fatalf("exit status %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "reserved") {
		t.Fatalf("lint issue not reported: %q", stderr.String())
	}
}
