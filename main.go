// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/docuvault/document-service/cmd"

func main() {
	cmd.Execute()
}
