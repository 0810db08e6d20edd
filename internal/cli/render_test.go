package cli

import (
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/matzehuels/layerstack/pkg/errors"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output strips input ext", "", "stack.json", "stack"},
		{"no output with toml input", "", "data/stack.toml", "data/stack"},
		{"output with format ext", "viz.html", "stack.json", "viz"},
		{"output with svg ext", "out.svg", "stack.json", "out"},
		{"output without ext", "viz", "stack.json", "viz"},
		{"output with unknown ext", "viz.bin", "stack.json", "viz.bin"},
		{"stdin input", "", "-", "stack"},
		{"stdin input with output", "viz.html", "-", "viz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basePath(tt.output, tt.input)
			if got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestLayoutOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		want   string
	}{
		{"default from input", "stack.json", "", "stack.layout.json"},
		{"default from toml input", "data/stack.toml", "", "data/stack.layout.json"},
		{"explicit output", "stack.json", "positions.json", "positions.json"},
		{"stdin input", "-", "", "stack.layout.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layoutOutputPath(tt.input, tt.output)
			if got != tt.want {
				t.Errorf("layoutOutputPath(%q, %q) = %q, want %q", tt.input, tt.output, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "stack.json")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"html": []byte("<!DOCTYPE html>"),
			"dot":  []byte("digraph multiplex {\n}\n"),
		},
		formats: []string{"html", "dot"},
		input:   input,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	htmlData, err := os.ReadFile(filepath.Join(dir, "stack.html"))
	if err != nil {
		t.Fatalf("read html output: %v", err)
	}
	if string(htmlData) != "<!DOCTYPE html>" {
		t.Errorf("html output = %q, want rendered bytes", htmlData)
	}

	if _, err := os.Stat(filepath.Join(dir, "stack.dot")); err != nil {
		t.Errorf("dot output missing: %v", err)
	}
}

func TestWriteArtifactsExplicitOutput(t *testing.T) {
	dir := t.TempDir()

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"html": []byte("<html></html>")},
		formats:   []string{"html"},
		input:     filepath.Join(dir, "stack.json"),
		output:    filepath.Join(dir, "viz.html"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "viz.html")); err != nil {
		t.Errorf("explicit output missing: %v", err)
	}
}

func TestWriteArtifactsSkipsMissingFormat(t *testing.T) {
	dir := t.TempDir()

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"html": []byte("<html></html>")},
		formats:   []string{"html", "svg"},
		input:     filepath.Join(dir, "stack.json"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "stack.svg")); !os.IsNotExist(err) {
		t.Error("svg output should not exist when artifact is missing")
	}
}

func TestWriteArtifactsOverwriteGuard(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "stack.json")
	if err := os.WriteFile(input, []byte(`{"layers": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"json": []byte("{}")},
		formats:   []string{"json"},
		input:     input,
	})
	if err == nil {
		t.Fatal("writeArtifacts() should refuse to overwrite the input manifest")
	}
	if pkgerrors.GetCode(err) != pkgerrors.ErrCodeInvalidPath {
		t.Errorf("error code = %v, want %v", pkgerrors.GetCode(err), pkgerrors.ErrCodeInvalidPath)
	}

	// The manifest must be untouched
	data, readErr := os.ReadFile(input)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != `{"layers": []}` {
		t.Error("input manifest was modified")
	}
}
