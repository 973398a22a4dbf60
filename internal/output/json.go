package output

import (
	"encoding/json"
	"io"
)

// jsonFormatter renders the records as a JSON array with 4-space indentation.
// HTML escaping is disabled so titles keep non-ASCII and special characters
// literally.
type jsonFormatter struct {
	w io.Writer
}

func (f *jsonFormatter) Format(records []Record) error {
	if records == nil {
		records = []Record{}
	}

	encoder := json.NewEncoder(f.w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	return encoder.Encode(records)
}
