package main

import "github.com/hsolberg/nutsh/cmd"

func main() {
	cmd.Execute()
}
