package multiplex

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"

	"github.com/matzehuels/layerstack/pkg/errors"
)

// Manifest formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// ReadJSON decodes a JSON manifest and validates the resulting graph.
func ReadJSON(r io.Reader) (*Graph, error) {
	var g Graph
	dec := json.NewDecoder(r)
	if err := dec.Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode JSON manifest")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// ReadTOML decodes a TOML manifest and validates the resulting graph.
func ReadTOML(r io.Reader) (*Graph, error) {
	var g Graph
	if _, err := toml.NewDecoder(r).Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode TOML manifest")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Read decodes a manifest in the named format ("json" or "toml").
func Read(r io.Reader, format string) (*Graph, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidManifest, "unknown manifest format: %s", format)
	}
}

// ReadFile loads a manifest from disk, detecting the format from the file
// extension and falling back to content sniffing for unknown extensions.
// The path "-" reads from standard input instead.
func ReadFile(path string) (*Graph, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "read manifest from stdin")
		}
		return Read(bytes.NewReader(data), DetectFormat("", data))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "read manifest %s", path)
	}
	return Read(bytes.NewReader(data), DetectFormat(path, data))
}

// DetectFormat picks the manifest format for a path/content pair.
// Extensions win; otherwise content starting with '{' is treated as JSON
// and everything else as TOML.
func DetectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatTOML
}

// Marshal serializes a graph as indented JSON, the canonical interchange and
// cache-hashing form. Field order is fixed by the struct, so equal graphs
// produce identical bytes.
func Marshal(g *Graph) ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal graph")
	}
	return data, nil
}
