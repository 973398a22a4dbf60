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

package qiita

import "testing"

func testArticles() []Article {
	return []Article{
		{ID: "hogehoge", Title: "aaa", PageViewsCount: 11, LikesCount: 22, StocksCount: 33},
		{ID: "fugafuga", Title: "bbb", PageViewsCount: 44, LikesCount: 55, StocksCount: 66},
	}
}

func ids(articles []Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}

func TestSortArticles(t *testing.T) {
	tests := []struct {
		name    string
		key     SortKey
		reverse bool
		want    []string
	}{
		{
			name: "no key keeps API order",
			key:  SortNone,
			want: []string{"hogehoge", "fugafuga"},
		},
		{
			name: "views ascending",
			key:  SortViews,
			want: []string{"hogehoge", "fugafuga"},
		},
		{
			name:    "views descending",
			key:     SortViews,
			reverse: true,
			want:    []string{"fugafuga", "hogehoge"},
		},
		{
			name:    "likes descending",
			key:     SortLikes,
			reverse: true,
			want:    []string{"fugafuga", "hogehoge"},
		},
		{
			name: "stocks ascending",
			key:  SortStocks,
			want: []string{"hogehoge", "fugafuga"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles := testArticles()
			SortArticles(articles, tt.key, tt.reverse)

			got := ids(articles)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSortArticles_TiesKeepAPIOrder(t *testing.T) {
	articles := []Article{
		{ID: "a", PageViewsCount: 10},
		{ID: "b", PageViewsCount: 5},
		{ID: "c", PageViewsCount: 10},
		{ID: "d", PageViewsCount: 5},
	}

	SortArticles(articles, SortViews, false)

	want := []string{"b", "d", "a", "c"}
	got := ids(articles)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	// Ties must stay stable under descending order too.
	SortArticles(articles, SortViews, true)

	want = []string{"a", "c", "b", "d"}
	got = ids(articles)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("descending order = %v, want %v", got, want)
		}
	}
}

func TestSortArticles_DoubleReversalRoundTrip(t *testing.T) {
	// Sorting ascending twice and descending twice must each be idempotent,
	// and descending must be the exact reverse of ascending when all keys
	// are distinct.
	asc := []Article{
		{ID: "a", LikesCount: 3},
		{ID: "b", LikesCount: 1},
		{ID: "c", LikesCount: 2},
	}
	desc := append([]Article(nil), asc...)

	SortArticles(asc, SortLikes, false)
	SortArticles(desc, SortLikes, true)

	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("descending is not the reverse of ascending: asc=%v desc=%v", ids(asc), ids(desc))
		}
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{input: "", want: SortNone},
		{input: "views", want: SortViews},
		{input: "likes", want: SortLikes},
		{input: "stocks", want: SortStocks},
		{input: "title", wantErr: true},
		{input: "Views", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSortKey(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
