package main

import "github.com/farzaaaan/dupnames/cmd"

func main() {
	cmd.Execute()
}
