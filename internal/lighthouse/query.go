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

package lighthouse

import (
	"fmt"
	"regexp"
	"strings"
)

// MilestoneQuery builds the search query selecting every ticket in the named
// milestone. The name is quoted so multi-word milestones match as a whole.
func MilestoneQuery(milestone string) string {
	return fmt.Sprintf("milestone:%q", milestone)
}

var quotedTag = regexp.MustCompile(`"(.*?)"\s*`)

// ParseTags splits Lighthouse's space-separated tag string. Double-quoted
// tags may contain spaces and are returned first, followed by the bare
// words in their original order. Empty and repeated tags are dropped.
func ParseTags(list string) []string {
	var tags []string
	rest := quotedTag.ReplaceAllStringFunc(list, func(m string) string {
		tags = append(tags, quotedTag.FindStringSubmatch(m)[1])
		return ""
	})
	tags = append(tags, strings.Fields(rest)...)

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
