// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package issues

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLanguages(t *testing.T) {
	issue := &Issue{URL: "https://api.github.com/repos/a/a/issues/1"}
	require.Nil(t, issue.Languages)

	issue.SetLanguages(map[string]int{
		"Go":         90000,
		"Python":     120000,
		"Shell":      500,
		"Dockerfile": 200,
		"Makefile":   100,
	})

	require.Len(t, issue.Languages, MaxLanguages)
	require.Equal(t, "Python", issue.Languages[0].Name)
	require.Equal(t, "Go", issue.Languages[1].Name)
	require.Equal(t, "Shell", issue.Languages[2].Name)

	// An empty map records "checked, nothing known", not nil
	issue.SetLanguages(map[string]int{})
	require.NotNil(t, issue.Languages)
	require.Empty(t, issue.Languages)
}

func TestTopLanguageNames(t *testing.T) {
	issue := &Issue{}
	require.Empty(t, issue.TopLanguageNames(2))

	issue.SetLanguages(map[string]int{"Go": 3, "Rust": 2, "C": 1})
	require.Equal(t, []string{"Go", "Rust"}, issue.TopLanguageNames(2))
	require.Equal(t, []string{"Go", "Rust", "C"}, issue.TopLanguageNames(5))
}
