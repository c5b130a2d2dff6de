package report

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

func writeMsgpack(w io.Writer, out Output) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(out)
}

// ReadMsgpack decodes a report written with FormatMsgpack
func ReadMsgpack(r io.Reader) (Output, error) {
	var out Output
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return Output{}, err
	}
	return out, nil
}
