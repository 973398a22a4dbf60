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
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// textFormatter renders an aligned five-column table. Title and Id are
// left-aligned, the three counts right-aligned.
type textFormatter struct {
	w io.Writer
}

func (f *textFormatter) Format(records []Record) error {
	table := tablewriter.NewWriter(f.w)
	table.SetHeader(fieldNames)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, r := range records {
		table.Append([]string{
			r.Title,
			strconv.Itoa(r.Views),
			strconv.Itoa(r.Likes),
			strconv.Itoa(r.Stocks),
			r.ID,
		})
	}

	table.Render()
	return nil
}
