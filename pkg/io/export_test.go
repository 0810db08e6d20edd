package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/multiplex"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.html")
	content := []byte("<!DOCTYPE html>")

	if err := WriteFile(path, content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.html")

	if err := WriteFile(path, []byte("first, much longer content")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want full overwrite", got)
	}
}

func TestWriteFileInvalidPath(t *testing.T) {
	err := WriteFile("", []byte("data"))
	if err == nil {
		t.Fatal("expected error for empty path")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidPath {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "graph.html"), []byte("data"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if errors.GetCode(err) != errors.ErrCodeIOFailure {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeIOFailure)
	}
}

func TestWriteGraphRoundTrip(t *testing.T) {
	g := multiplex.FromMatrices([][]float64{{0, 1.5}, {2, 0}})
	g.Title = "Round trip"

	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("manifest should end with a newline")
	}

	restored, err := multiplex.Read(&buf, multiplex.FormatJSON)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if restored.Title != g.Title {
		t.Errorf("title = %q, want %q", restored.Title, g.Title)
	}
	if restored.Layers[0].Matrix[0][1] != 1.5 {
		t.Errorf("matrix value = %v, want 1.5", restored.Layers[0].Matrix[0][1])
	}
}

func TestExportGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.json")
	g := multiplex.FromMatrices([][]float64{{0, 1}, {0, 0}})

	if err := ExportGraph(g, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored, err := multiplex.ReadFile(path)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if restored.LayerCount() != 1 || restored.NodeCount() != 2 {
		t.Errorf("round trip changed shape: %d layers, %d nodes", restored.LayerCount(), restored.NodeCount())
	}
}
