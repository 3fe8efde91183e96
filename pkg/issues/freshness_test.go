// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package issues

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func timestampDaysAgo(days int) string {
	return time.Now().UTC().AddDate(0, 0, -days).Format(TimeFormat)
}

func TestCreatedWithinDays(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
		days      int
		expected  bool
	}{
		{"created now", time.Now().UTC().Format(TimeFormat), 15, true},
		{"one day old", timestampDaysAgo(1), 15, true},
		{"at the window edge", timestampDaysAgo(14), 15, true},
		{"on the window", timestampDaysAgo(15), 15, false},
		{"way too old", timestampDaysAgo(100), 15, false},
		{"tight window", timestampDaysAgo(2), 1, false},
		{"garbage timestamp", "not-a-date", 15, false},
		{"empty timestamp", "", 15, false},
		{"wrong format", "2024-01-02 15:04:05", 15, false},
	}

	for _, tc := range tests {
		require.Equal(t, tc.expected, CreatedWithinDays(tc.createdAt, tc.days), tc.name)
	}
}

func TestCreatedWithinDaysDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		CreatedWithinDays("1970-13-45T99:99:99Z", 15)
	})
}
