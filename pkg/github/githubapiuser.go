// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// githubAPIUser is a type meant to be embedded in all objects that need to
// perform calls to the GitHub API

package github

import (
	"context"
	"net/http"
	"os"

	gogithub "github.com/google/go-github/v39/github"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type githubAPIUser struct {
	client *gogithub.Client
}

// GitHubClient returns a go-github client. A token from the options takes
// precedence; the environment is the fallback. Without either the client
// runs unauthenticated, which survives only a handful of search calls per
// minute.
func (gau *githubAPIUser) GitHubClient(opts *Options) *gogithub.Client {
	if gau.client == nil {
		httpClient := http.DefaultClient
		tkn := opts.Token
		if tkn == "" {
			tkn = os.Getenv(githubTknVar)
		}
		if tkn == "" {
			logrus.Warn("Note: GitHub client will not be authenticated")
		} else {
			httpClient = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(
				&oauth2.Token{AccessToken: tkn},
			))
		}
		gau.client = gogithub.NewClient(httpClient)
	}
	return gau.client
}
