package io

import (
	"io"
	"os"

	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/multiplex"
)

// WriteFile writes one artifact to path as a full overwrite. The path is
// validated first, so documents built in memory are never partially written
// to a destination that was doomed from the start.
func WriteFile(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", path)
	}
	return nil
}

// WriteGraph encodes a graph as a normalized JSON manifest and writes it
// to w. The output can be re-read with [multiplex.Read] for round-trip
// processing, which also makes this the TOML-to-JSON converter.
func WriteGraph(g *multiplex.Graph, w io.Writer) error {
	data, err := multiplex.Marshal(g)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write manifest")
	}
	return nil
}

// ExportGraph writes a graph manifest to a JSON file at path.
// This is a convenience wrapper around [WriteGraph] for file-based output.
func ExportGraph(g *multiplex.Graph, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "create %s", path)
	}
	defer f.Close()
	return WriteGraph(g, f)
}
