package multiplex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/layerstack/pkg/errors"
)

const jsonManifest = `{
  "title": "Example",
  "layers": [
    {"name": "Trust", "matrix": [[0, 1], [1, 0]]},
    {"matrix": [[0, 2], [0, 0]]}
  ]
}`

const tomlManifest = `title = "Example"

[[layers]]
name = "Trust"
matrix = [[0, 1], [1, 0]]

[[layers]]
matrix = [[0, 2], [0, 0]]
`

func TestReadJSON(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(jsonManifest))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if g.Title != "Example" {
		t.Errorf("Title = %q, want %q", g.Title, "Example")
	}
	if g.LayerCount() != 2 {
		t.Fatalf("LayerCount() = %d, want 2", g.LayerCount())
	}
	if g.LayerName(0) != "Trust" {
		t.Errorf("LayerName(0) = %q, want %q", g.LayerName(0), "Trust")
	}
	if g.Layers[1].Matrix[0][1] != 2 {
		t.Errorf("layer 2 entry (0,1) = %v, want 2", g.Layers[1].Matrix[0][1])
	}
}

func TestReadTOML(t *testing.T) {
	g, err := ReadTOML(strings.NewReader(tomlManifest))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
}

func TestReadEquivalence(t *testing.T) {
	fromJSON, err := ReadJSON(strings.NewReader(jsonManifest))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	fromTOML, err := ReadTOML(strings.NewReader(tomlManifest))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}

	a, err := Marshal(fromJSON)
	if err != nil {
		t.Fatalf("Marshal(json graph) error: %v", err)
	}
	b, err := Marshal(fromTOML)
	if err != nil {
		t.Fatalf("Marshal(toml graph) error: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("JSON and TOML manifests decoded to different graphs:\n%s\nvs\n%s", a, b)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   string
		wantCode errors.Code
	}{
		{"malformed JSON", `{"layers": [`, FormatJSON, errors.ErrCodeInvalidManifest},
		{"malformed TOML", `layers = what`, FormatTOML, errors.ErrCodeInvalidManifest},
		{"unknown format", `{}`, "yaml", errors.ErrCodeInvalidManifest},
		{"valid syntax, invalid graph", `{"layers": []}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"non-square", `{"layers": [{"matrix": [[0, 1]]}]}`, FormatJSON, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("Read() expected error, got nil")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Read() code = %q, want %q (err: %v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(jsonPath, []byte(jsonManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "graph.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	// JSON content behind an unknown extension exercises content sniffing.
	sniffPath := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(sniffPath, []byte(jsonManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, tomlPath, sniffPath} {
		g, err := ReadFile(path)
		if err != nil {
			t.Errorf("ReadFile(%s) error: %v", path, err)
			continue
		}
		if g.LayerCount() != 2 {
			t.Errorf("ReadFile(%s) LayerCount() = %d, want 2", path, g.LayerCount())
		}
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestReadFileStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin.json")
	if err := os.WriteFile(path, []byte(jsonManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	orig := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = orig }()

	g, err := ReadFile("-")
	if err != nil {
		t.Fatalf("ReadFile(-) error: %v", err)
	}
	if g.LayerCount() != 2 {
		t.Errorf("ReadFile(-) LayerCount() = %d, want 2", g.LayerCount())
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
		want string
	}{
		{"json extension", "a.json", "", FormatJSON},
		{"toml extension", "a.toml", "", FormatTOML},
		{"uppercase extension", "a.JSON", "", FormatJSON},
		{"sniff json", "a.txt", "  {\"layers\": []}", FormatJSON},
		{"sniff toml", "a.txt", "title = \"x\"", FormatTOML},
		{"stdin json", "-", "{}", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.path, []byte(tt.data)); got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMarshalDeterminism(t *testing.T) {
	g := referenceGraph()

	a, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	b, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(a) != string(b) {
		t.Error("Marshal() is not deterministic")
	}
}
