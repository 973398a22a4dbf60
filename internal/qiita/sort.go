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

import (
	"fmt"
	"sort"
)

// SortKey selects the field articles are ordered by.
type SortKey string

// Valid sort keys. SortNone leaves the order as returned by the API.
const (
	SortNone   SortKey = ""
	SortViews  SortKey = "views"
	SortLikes  SortKey = "likes"
	SortStocks SortKey = "stocks"
)

// ParseSortKey validates a --sort-by flag value.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(s); key {
	case SortNone, SortViews, SortLikes, SortStocks:
		return key, nil
	default:
		return SortNone, fmt.Errorf("invalid sort key %q: must be one of views, likes, stocks", s)
	}
}

// SortArticles sorts articles in place by the given key, ascending by
// default and descending when reverse is set. The sort is stable: articles
// with equal keys keep their relative API order. SortNone is a no-op.
func SortArticles(articles []Article, key SortKey, reverse bool) {
	if key == SortNone {
		return
	}

	value := func(a *Article) int {
		switch key {
		case SortViews:
			return a.PageViewsCount
		case SortLikes:
			return a.LikesCount
		default:
			return a.StocksCount
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if reverse {
			return value(&articles[i]) > value(&articles[j])
		}
		return value(&articles[i]) < value(&articles[j])
	})
}
