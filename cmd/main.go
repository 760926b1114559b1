package main

import (
	"snowctl.dev/cli/internal/interfaces/cli"
)

func main() {
	cli.Execute()
}
