package main

import "github.com/thenoetrevino/embudo/cmd"

func main() {
	cmd.Execute()
}
