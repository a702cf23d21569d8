package main

import "github.com/opengridlab/boardgen/cmd/boardgen/cmd"

func main() {
	cmd.Execute()
}
