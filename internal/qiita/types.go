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

// Package qiita provides types and interfaces for interacting with the Qiita API v2.
package qiita

// Article represents a Qiita article belonging to the authenticated user.
// The list endpoint populates ID, Title and LikesCount; PageViewsCount comes
// back null there and is only authoritative on the per-item endpoint, so the
// collector always overwrites it. StocksCount is derived from the stockers
// endpoint, which has no count field of its own.
type Article struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	LikesCount     int    `json:"likes_count"`
	PageViewsCount int    `json:"page_views_count"`
	StocksCount    int    `json:"-"`

	// Stockers and Likers are filled by enrichment, reduced to {id, name}.
	Stockers []User `json:"-"`
	Likers   []User `json:"-"`
}

// User identifies a platform user who stocked or liked an article.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ArticlePage represents one page of the authenticated user's articles.
// NextPageURL is the cursor extracted from the Link response header; it is
// empty when there are no further pages.
type ArticlePage struct {
	Articles    []Article
	NextPageURL string
}

// FetchOptions configures how the article list is fetched.
type FetchOptions struct {
	// PageSize controls how many articles to request per page via the
	// per_page query parameter. Zero leaves the parameter off entirely
	// so the API default applies. Maximum is 100 per Qiita's API limits.
	PageSize int
}
