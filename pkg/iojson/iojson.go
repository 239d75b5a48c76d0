// Package iojson holds utilities for reading and writing JSON from a
// command line interface perspective.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteLine writes obj as a single compact JSON line, for machine-readable
// command output.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal json line: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write writes obj as indented JSON followed by a newline.
func Write(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
