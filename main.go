package main

import "github.com/tranvictor/chainguard/cmd"

func main() {
	cmd.Execute()
}
