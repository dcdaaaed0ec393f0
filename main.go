package main

import "github.com/agentic-research/topoc/cmd"

func main() {
	cmd.Execute()
}
