package main

import "github.com/jimrybarski/pilercr-parser/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
