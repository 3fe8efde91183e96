// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package issues

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultWindowDays is the default recency window for fetched issues
const DefaultWindowDays = 15

// CreatedWithinDays checks if a timestamp in the GitHub wire format falls
// inside the recency window: strictly fewer than days whole days old.
// Unparseable timestamps are logged and treated as stale so that a single
// bad record drops out instead of stopping a run.
func CreatedWithinDays(createdAt string, days int) bool {
	created, err := time.Parse(TimeFormat, createdAt)
	if err != nil {
		logrus.Errorf("Could not parse issue creation date %q: %v", createdAt, err)
		return false
	}
	age := int(time.Now().UTC().Sub(created).Hours() / 24)
	return age < days
}
