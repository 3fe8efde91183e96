// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package main

import (
	"fmt"
	"os"

	"github.com/mattermost/first-timers-bot/cmd/first-timers-bot/commands"
	"github.com/mattermost/first-timers-bot/cmd/first-timers-bot/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
