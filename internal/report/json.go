package report

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, out Output) error {
	if out.Files == nil {
		out.Files = []FileReport{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
