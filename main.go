// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main is the entry point for the Reactivities CLI application.
package main

import (
	"reactivities/cli/cmd"
)

func main() {
	cmd.Execute()
}
