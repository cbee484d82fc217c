package main

import "github.com/barquest/barquest/internal/cli"

func main() {
	cli.Execute()
}
