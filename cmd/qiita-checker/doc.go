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

// Package main implements the qiita-checker command-line interface.
// This tool fetches the authenticated user's articles from the Qiita API,
// enriches each with view, like and stock counts, and renders the result
// as a text table, CSV, or JSON.
//
// The CLI supports:
//   - Fetching all published articles with full pagination (default)
//   - Inspecting a single article with its stockers and likers (--item-id)
//   - Sorting by views, likes or stocks, ascending or descending
//   - Customizable output destinations (stdout or file)
//   - Output path sandboxing for containerized runs
//
// Usage:
//
//	qiita-checker [flags]
//
// Example:
//
//	export QIITA_TOKEN=your_token
//	qiita-checker --output csv --sort-by views --reverse --filename stats.csv
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication/authorization error
//   - 3: Network error
package main
