// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command inkwell is the terminal front-end for the reading service.
package main

import "github.com/taibuivan/inkwell/internal/cli"

func main() {
	cli.Execute()
}
