package output

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvFormatter renders a header row plus one data row per record with
// standard RFC 4180 quoting.
type csvFormatter struct {
	w io.Writer
}

func (f *csvFormatter) Format(records []Record) error {
	writer := csv.NewWriter(f.w)

	if err := writer.Write(fieldNames); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Title,
			strconv.Itoa(r.Views),
			strconv.Itoa(r.Likes),
			strconv.Itoa(r.Stocks),
			r.ID,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
