package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// writeOutput writes v as indented JSON, or calls text for the boxed rendering.
func writeOutput(w io.Writer, format string, v any, text func()) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatText, "":
		text()
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
	}
}
