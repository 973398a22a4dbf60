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
	"fmt"

	qerrors "github.com/sotoiwa/qiita-checker/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Pages to return from FetchArticles, in order. The mock chains them
	// with synthetic cursor URLs automatically.
	Pages [][]Article

	// Views maps article id to the page_views_count the detail endpoint
	// reports. Missing ids report zero views.
	Views map[string]int

	// Stockers and Likers map article id to enrichment users.
	Stockers map[string][]User
	Likers   map[string][]User

	// Error to return from every call
	Error error

	// DetailError, when set, fails only the detail endpoint. Used to
	// exercise enrichment failures after a successful list phase.
	DetailError error

	// Behavior flags
	ShouldFailAuth bool

	// Track calls for verification
	ListCalls     int
	DetailCalls   int
	StockersCalls int
	LikersCalls   int
	LastPageURL   string
}

// FetchArticles implements the Client interface
func (m *MockClient) FetchArticles(ctx context.Context, pageURL string, opts FetchOptions) (*ArticlePage, error) {
	m.ListCalls++
	m.LastPageURL = pageURL

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return nil, fmt.Errorf("authentication failed: %w", qerrors.ErrInvalidToken)
	}
	if m.Error != nil {
		return nil, m.Error
	}

	idx := m.ListCalls - 1
	if idx >= len(m.Pages) {
		return &ArticlePage{}, nil
	}

	page := &ArticlePage{Articles: m.Pages[idx]}
	if idx < len(m.Pages)-1 {
		page.NextPageURL = fmt.Sprintf("https://qiita.example/api/v2/authenticated_user/items?page=%d", idx+2)
	}
	return page, nil
}

// FetchArticle implements the Client interface
func (m *MockClient) FetchArticle(ctx context.Context, id string) (*Article, error) {
	m.DetailCalls++

	if m.Error != nil {
		return nil, m.Error
	}
	if m.DetailError != nil {
		return nil, m.DetailError
	}

	for _, page := range m.Pages {
		for _, a := range page {
			if a.ID == id {
				detail := a
				detail.PageViewsCount = m.Views[id]
				return &detail, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown article %s: %w", id, qerrors.ErrNotFound)
}

// FetchStockers implements the Client interface
func (m *MockClient) FetchStockers(ctx context.Context, id string) ([]User, error) {
	m.StockersCalls++

	if m.Error != nil {
		return nil, m.Error
	}
	return m.Stockers[id], nil
}

// FetchLikers implements the Client interface
func (m *MockClient) FetchLikers(ctx context.Context, id string) ([]User, error) {
	m.LikersCalls++

	if m.Error != nil {
		return nil, m.Error
	}
	return m.Likers[id], nil
}
