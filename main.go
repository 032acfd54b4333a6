package main

import "github.com/tranvictor/addrcard/cmd"

func main() {
	cmd.Execute()
}
