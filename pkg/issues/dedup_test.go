// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package issues

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func testIssue(url, updatedAt string) *Issue {
	return &Issue{
		URL:       url,
		Title:     "Test issue",
		CreatedAt: "2024-01-01T10:00:00Z",
		UpdatedAt: updatedAt,
	}
}

func TestFresh(t *testing.T) {
	history := []*Issue{
		testIssue("https://api.github.com/repos/a/a/issues/1", "2024-01-02T10:00:00Z"),
		testIssue("https://api.github.com/repos/a/a/issues/2", "2024-01-03T10:00:00Z"),
	}
	candidates := []*Issue{
		testIssue("https://api.github.com/repos/a/a/issues/2", "2024-01-03T10:00:00Z"),
		testIssue("https://api.github.com/repos/b/b/issues/9", "2024-01-04T10:00:00Z"),
		testIssue("https://api.github.com/repos/c/c/issues/5", "2024-01-05T10:00:00Z"),
	}

	// Empty history means everything is fresh
	require.Equal(t, candidates, Fresh([]*Issue{}, candidates))
	require.Equal(t, candidates, Fresh(nil, candidates))

	fresh := Fresh(history, candidates)
	require.Len(t, fresh, 2)
	require.Equal(t, "https://api.github.com/repos/b/b/issues/9", fresh[0].URL)
	require.Equal(t, "https://api.github.com/repos/c/c/issues/5", fresh[1].URL)

	// Nothing in the result may appear in history
	for _, issue := range fresh {
		for _, old := range history {
			require.NotEqual(t, old.URL, issue.URL)
		}
	}

	// Applying the same history twice changes nothing
	require.Equal(t, fresh, Fresh(history, fresh))
}

func TestDedupBatch(t *testing.T) {
	first := testIssue("https://api.github.com/repos/a/a/issues/1", "2024-01-02T10:00:00Z")
	first.Title = "first occurrence"
	duplicate := testIssue("https://api.github.com/repos/a/a/issues/1", "2024-01-02T10:00:00Z")
	duplicate.Title = "second occurrence"
	other := testIssue("https://api.github.com/repos/b/b/issues/2", "2024-01-03T10:00:00Z")

	unique := DedupBatch([]*Issue{first, duplicate, other})
	require.Len(t, unique, 2)
	// First occurrence wins
	require.Equal(t, "first occurrence", unique[0].Title)
	require.Equal(t, other.URL, unique[1].URL)

	require.Empty(t, DedupBatch([]*Issue{}))
}

func TestLimitIssues(t *testing.T) {
	list := []*Issue{}
	for i := 0; i < 150; i++ {
		list = append(list, testIssue(
			fmt.Sprintf("https://api.github.com/repos/a/a/issues/%d", i),
			fmt.Sprintf("2024-01-01T10:%02d:%02dZ", i/60, i%60),
		))
	}

	limited := LimitIssues(list, 100)
	require.Len(t, limited, 100)

	// Newest update first
	for i := 1; i < len(limited); i++ {
		require.GreaterOrEqual(t, limited[i-1].UpdatedAt, limited[i].UpdatedAt)
	}

	// The original slice order is untouched
	require.Equal(t, "https://api.github.com/repos/a/a/issues/0", list[0].URL)

	require.Empty(t, LimitIssues(nil, 100))
	require.Len(t, LimitIssues(list[:5], 100), 5)
}
