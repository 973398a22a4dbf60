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
	"context"
	"log/slog"
)

// Collector gathers the authenticated user's articles and enriches them with
// the fields the list endpoint does not provide. It owns the accumulator for
// the duration of one run; requests are issued strictly sequentially and the
// first error aborts the whole collection with no partial result.
type Collector struct {
	client Client
	opts   FetchOptions
	log    *slog.Logger
}

// NewCollector creates a collector using the given client.
func NewCollector(client Client, opts FetchOptions, log *slog.Logger) *Collector {
	return &Collector{
		client: client,
		opts:   opts,
		log:    log,
	}
}

// CollectAll pages through the article list until no next cursor remains,
// then enriches every article in place. The number of requests is
// O(pages + 2*articles). There is no guard against a Link header cycle;
// the API is trusted to terminate pagination.
func (c *Collector) CollectAll(ctx context.Context) ([]Article, error) {
	var articles []Article

	pageURL := ""
	for {
		page, err := c.client.FetchArticles(ctx, pageURL, c.opts)
		if err != nil {
			return nil, err
		}
		articles = append(articles, page.Articles...)

		pageURL = page.NextPageURL
		if pageURL == "" {
			break
		}
	}

	for i := range articles {
		if err := c.enrich(ctx, &articles[i]); err != nil {
			return nil, err
		}
	}

	return articles, nil
}

// CollectOne fetches a single article by id and merges in its stockers and
// likers as well as the view count. Exactly three requests are issued.
func (c *Collector) CollectOne(ctx context.Context, id string) (*Article, error) {
	article, err := c.client.FetchArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.attachStockers(ctx, article); err != nil {
		return nil, err
	}

	likers, err := c.client.FetchLikers(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	article.Likers = likers

	return article, nil
}

// enrich overwrites the article's view count with the authoritative value
// from the per-item endpoint and derives the stock count from the stockers
// list. The list endpoint returns page_views_count as null, so whatever is
// already on the article is never trusted.
func (c *Collector) enrich(ctx context.Context, article *Article) error {
	detail, err := c.client.FetchArticle(ctx, article.ID)
	if err != nil {
		return err
	}
	article.PageViewsCount = detail.PageViewsCount

	return c.attachStockers(ctx, article)
}

// attachStockers fetches the stockers list and derives the stock count.
func (c *Collector) attachStockers(ctx context.Context, article *Article) error {
	stockers, err := c.client.FetchStockers(ctx, article.ID)
	if err != nil {
		return err
	}
	for _, user := range stockers {
		c.log.Info("stocker",
			slog.String("id", user.ID),
			slog.String("name", user.Name),
		)
	}
	article.Stockers = stockers
	article.StocksCount = len(stockers)

	return nil
}
