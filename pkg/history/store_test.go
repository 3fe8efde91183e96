// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattermost/first-timers-bot/pkg/issues"
	"github.com/stretchr/testify/require"
)

func storeTestIssue(n int) *issues.Issue {
	return &issues.Issue{
		URL:       fmt.Sprintf("https://api.github.com/repos/a/a/issues/%d", n),
		Title:     fmt.Sprintf("Issue %d", n),
		CreatedAt: "2024-01-01T10:00:00Z",
		UpdatedAt: fmt.Sprintf("2024-01-01T%02d:%02d:00Z", 10+n/60, n%60),
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "db.json"))
	list, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "db.json")
	store := NewStore(path)

	saved := []*issues.Issue{storeTestIssue(1), storeTestIssue(2)}
	saved[0].SetLanguages(map[string]int{"Go": 100, "Shell": 5})
	require.NoError(t, store.Save(saved))

	// The parent directory got created on the fly
	require.FileExists(t, path)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	// Newest update first
	require.Equal(t, saved[1].URL, loaded[0].URL)
	require.Equal(t, saved[0].URL, loaded[1].URL)
	require.Equal(t, []issues.Language{{Name: "Go", Bytes: 100}, {Name: "Shell", Bytes: 5}}, loaded[1].Languages)
}

func TestStoreRetentionCap(t *testing.T) {
	store := NewStoreWithOptions(&Options{
		Path:      filepath.Join(t.TempDir(), "db.json"),
		MaxIssues: 100,
	})

	list := []*issues.Issue{}
	for i := 0; i < 150; i++ {
		list = append(list, storeTestIssue(i))
	}
	require.NoError(t, store.Save(list))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 100)
	for i := 1; i < len(loaded); i++ {
		require.GreaterOrEqual(t, loaded[i-1].UpdatedAt, loaded[i].UpdatedAt)
	}
}

func TestStoreBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewStore(path)

	require.NoError(t, store.Save([]*issues.Issue{storeTestIssue(1)}))
	// First save of a fresh database takes no backup
	require.NoFileExists(t, path+BackupSuffix)

	firstVersion, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Save([]*issues.Issue{storeTestIssue(1), storeTestIssue(2)}))
	require.FileExists(t, path+BackupSuffix)

	backup, err := os.ReadFile(path + BackupSuffix)
	require.NoError(t, err)
	require.Equal(t, firstVersion, backup)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEqual(t, firstVersion, current)
}

func TestStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewStore(path)

	// Not JSON at all
	require.NoError(t, os.WriteFile(path, []byte("definitely not json"), os.FileMode(0o644)))
	list, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, list)

	// JSON, but not a list
	require.NoError(t, os.WriteFile(path, []byte(`{"url": "x"}`), os.FileMode(0o644)))
	list, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestStoreWritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewStore(path)
	require.NoError(t, store.Save([]*issues.Issue{storeTestIssue(1)}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  ")

	var generic []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &generic))
	require.Equal(t, "https://api.github.com/repos/a/a/issues/1", generic[0]["url"])
}

func TestForPath(t *testing.T) {
	require.IsType(t, &Filesystem{}, ForPath("data/db.json"))
	require.IsType(t, &Filesystem{}, ForPath("file:///var/db.json"))
	require.IsType(t, &S3Backend{}, ForPath("s3://bucket/db.json"))
}
