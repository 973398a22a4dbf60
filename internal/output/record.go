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

// Package output renders collected article statistics as an aligned text
// table, CSV, or pretty-printed JSON.
package output

import "github.com/sotoiwa/qiita-checker/internal/qiita"

// Record is the projection of an article down to the five display fields.
// Field order here fixes both the JSON key order and the column order of
// the text and CSV renderers. Records are never mutated after creation.
type Record struct {
	Title  string `json:"Title"`
	Views  int    `json:"Views"`
	Likes  int    `json:"Likes"`
	Stocks int    `json:"Stocks"`
	ID     string `json:"Id"`
}

// fieldNames is the shared header row for the text and CSV formatters.
var fieldNames = []string{"Title", "Views", "Likes", "Stocks", "Id"}

// FromArticles projects enriched articles to output records.
func FromArticles(articles []qiita.Article) []Record {
	records := make([]Record, 0, len(articles))
	for _, a := range articles {
		records = append(records, Record{
			Title:  a.Title,
			Views:  a.PageViewsCount,
			Likes:  a.LikesCount,
			Stocks: a.StocksCount,
			ID:     a.ID,
		})
	}
	return records
}
