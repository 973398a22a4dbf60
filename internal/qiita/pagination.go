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

import "strings"

// nextPageURL extracts the rel="next" URL from a Link response header.
//
// The header is a comma-separated list of entries such as:
//
//	<https://qiita.com/api/v2/authenticated_user/items?page=1>; rel="first",
//	<https://qiita.com/api/v2/authenticated_user/items?page=2>; rel="next",
//	<https://qiita.com/api/v2/authenticated_user/items?page=4>; rel="last"
//
// It returns the URL between the angle brackets of the entry carrying
// rel="next", or the empty string when the header is absent or no such
// entry exists. No URL validation is performed; a malformed entry yields
// the empty string, which ends pagination.
func nextPageURL(header string) string {
	if header == "" {
		return ""
	}

	for _, link := range strings.Split(header, ",") {
		if !strings.Contains(link, `rel="next"`) {
			continue
		}

		start := strings.Index(link, "<")
		end := strings.Index(link, ">")
		if start < 0 || end < 0 || end <= start {
			return ""
		}
		return link[start+1 : end]
	}

	return ""
}
