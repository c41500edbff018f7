package main

import "bennypowers.dev/glaze/internal/cli"

func main() {
	cli.Execute()
}
