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

import "context"

// Client defines the interface for interacting with the Qiita API.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchArticles retrieves one page of the authenticated user's articles.
	// An empty pageURL fetches the first page of the canonical list endpoint;
	// subsequent pages are fetched by passing ArticlePage.NextPageURL back in.
	FetchArticles(ctx context.Context, pageURL string, opts FetchOptions) (*ArticlePage, error)

	// FetchArticle retrieves a single article by id. Unlike the list
	// endpoint, the response carries an authoritative page_views_count.
	FetchArticle(ctx context.Context, id string) (*Article, error)

	// FetchStockers retrieves the users who stocked the given article.
	FetchStockers(ctx context.Context, id string) ([]User, error)

	// FetchLikers retrieves the users who liked the given article.
	FetchLikers(ctx context.Context, id string) ([]User, error)
}
