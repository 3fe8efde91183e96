// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/pkg/errors"
)

const (
	verifyEndpoint = "https://api.twitter.com/2/users/me"
	tweetEndpoint  = "https://api.twitter.com/2/tweets"
)

type defaultTwitterImplementation struct {
	httpClient *http.Client
}

// oauthClient returns an HTTP client that signs every request with the
// OAuth 1.0a user context the v2 API expects
func (di *defaultTwitterImplementation) oauthClient(ctx context.Context, creds *Credentials) *http.Client {
	if di.httpClient == nil {
		config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
		token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)
		di.httpClient = config.Client(ctx, token)
	}
	return di.httpClient
}

func (di *defaultTwitterImplementation) verifyCredentials(
	ctx context.Context, creds *Credentials,
) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, verifyEndpoint, nil)
	if err != nil {
		return "", errors.Wrap(err, "building identity request")
	}
	res, err := di.oauthClient(ctx, creds).Do(req)
	if err != nil {
		return "", errors.Wrap(err, "querying the authenticated user")
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", errors.Errorf("identity check returned HTTP %d: %s", res.StatusCode, string(body))
	}

	me := struct {
		Data struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Username string `json:"username"`
		} `json:"data"`
	}{}
	if err := json.NewDecoder(res.Body).Decode(&me); err != nil {
		return "", errors.Wrap(err, "decoding identity response")
	}
	return me.Data.Username, nil
}

func (di *defaultTwitterImplementation) postTweet(
	ctx context.Context, creds *Credentials, text string,
) (string, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", errors.Wrap(err, "encoding tweet payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tweetEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "building tweet request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := di.oauthClient(ctx, creds).Do(req)
	if err != nil {
		return "", errors.Wrap(err, "posting tweet")
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", errors.Errorf("tweet creation returned HTTP %d: %s", res.StatusCode, string(body))
	}

	created := struct {
		Data struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"data"`
	}{}
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		return "", errors.Wrap(err, "decoding tweet response")
	}
	return created.Data.ID, nil
}

func (di *defaultTwitterImplementation) sleep(d time.Duration) {
	time.Sleep(d)
}
