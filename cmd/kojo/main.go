// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

// Command kojo shows what the kojo logger prints, level by level.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
