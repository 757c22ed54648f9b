package report

import (
	"encoding/json"
	"io"

	"github.com/linelint/linelint/internal/types"
)

// WriteJSON writes violations as an indented JSON array, never null.
func WriteJSON(w io.Writer, vs []types.Violation) error {
	if vs == nil {
		vs = []types.Violation{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(vs)
}
