// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package twitter

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Credentials are the four OAuth 1.0a user-context secrets the posting API
// requires. The JSON keys match the credentials files of earlier bot
// versions. Values are secrets: they never appear in logs or errors.
type Credentials struct {
	ConsumerKey       string `json:"Consumer Key"`
	ConsumerSecret    string `json:"Consumer Secret"`
	AccessToken       string `json:"Access Token"`
	AccessTokenSecret string `json:"Access Token Secret"`
}

// LoadCredentials reads and validates a JSON credentials file
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading credentials file")
	}
	creds := &Credentials{}
	if err := json.Unmarshal(data, creds); err != nil {
		return nil, errors.Wrap(err, "parsing credentials json data")
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

// Validate checks that all four fields are set
func (creds *Credentials) Validate() error {
	missing := []string{}
	if creds.ConsumerKey == "" {
		missing = append(missing, "Consumer Key")
	}
	if creds.ConsumerSecret == "" {
		missing = append(missing, "Consumer Secret")
	}
	if creds.AccessToken == "" {
		missing = append(missing, "Access Token")
	}
	if creds.AccessTokenSecret == "" {
		missing = append(missing, "Access Token Secret")
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required credentials: %v", missing)
	}
	return nil
}
