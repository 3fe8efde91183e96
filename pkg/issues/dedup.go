// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package issues

import "sort"

// DefaultMaxHistory caps how many issues the bot remembers between runs
const DefaultMaxHistory = 100

// Fresh returns the candidates whose URL does not appear in history,
// preserving the candidates' relative order. The API URL is the one and
// only identity key. With no history everything is fresh.
func Fresh(history, candidates []*Issue) []*Issue {
	if len(history) == 0 {
		return candidates
	}
	seen := make(map[string]struct{}, len(history))
	for _, old := range history {
		if old.URL != "" {
			seen[old.URL] = struct{}{}
		}
	}
	fresh := []*Issue{}
	for _, candidate := range candidates {
		if _, ok := seen[candidate.URL]; !ok {
			fresh = append(fresh, candidate)
		}
	}
	return fresh
}

// DedupBatch collapses duplicates inside a single batch, as happens when the
// same issue carries more than one of the searched labels. The first
// occurrence wins.
func DedupBatch(batch []*Issue) []*Issue {
	seen := make(map[string]struct{}, len(batch))
	unique := []*Issue{}
	for _, issue := range batch {
		if _, ok := seen[issue.URL]; ok {
			continue
		}
		seen[issue.URL] = struct{}{}
		unique = append(unique, issue)
	}
	return unique
}

// LimitIssues sorts issues by their last update, newest first, and truncates
// the list to max entries. The wire timestamp format sorts chronologically
// as a plain string.
func LimitIssues(list []*Issue, max int) []*Issue {
	if len(list) == 0 {
		return []*Issue{}
	}
	sorted := make([]*Issue, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].UpdatedAt > sorted[b].UpdatedAt
	})
	if len(sorted) > max {
		sorted = sorted[:max]
	}
	return sorted
}
