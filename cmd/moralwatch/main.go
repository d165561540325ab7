package main

import "github.com/ppiankov/moralwatch/internal/cli"

func main() {
	cli.Execute()
}
