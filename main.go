// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for listkit.
//
// Usage:
//
//	go run . [command] [flags]
//	./listkit [command] [flags]
//
// See --help for the available commands.
package main

import (
	"os"

	"github.com/sdk6/listkit/internal/logging"
	"github.com/sdk6/listkit/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Error("listkit", err)
		os.Exit(1)
	}
}
