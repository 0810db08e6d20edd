// Package io writes rendered artifacts and re-exports manifests.
//
// # Overview
//
// Rendering happens entirely in memory; this package owns the moment bytes
// touch disk. [WriteFile] performs one full overwrite per artifact after
// validating the destination path, so a failed render never leaves a
// truncated document behind a stale path.
//
// [WriteGraph] re-exports a parsed graph as a normalized JSON manifest.
// Because the TOML and JSON manifest formats decode into the same model,
// this doubles as a format converter:
//
//	g, err := multiplex.ReadFile("stack.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.WriteGraph(g, os.Stdout)
//
// # Errors
//
// Invalid destinations fail with INVALID_PATH before any write; failed
// writes surface as IO_FAILURE with the path in the message.
package io
