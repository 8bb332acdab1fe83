package main

import "artifact-resolver/internal/cli"

func main() {
	cli.Execute()
}
