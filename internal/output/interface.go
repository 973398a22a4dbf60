// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"fmt"
	"io"
)

// Recognized output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Formatter renders a list of records to its destination in one shot.
// All three implementations emit the same five columns in the same order:
// Title, Views, Likes, Stocks, Id.
type Formatter interface {
	// Format writes all records. It is called exactly once per run.
	Format(records []Record) error
}

// New returns the formatter for the given format name writing to w.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatText:
		return &textFormatter{w: w}, nil
	case FormatCSV:
		return &csvFormatter{w: w}, nil
	case FormatJSON:
		return &jsonFormatter{w: w}, nil
	default:
		return nil, fmt.Errorf("invalid output format %q: must be one of text, csv, json", format)
	}
}
