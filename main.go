package main

import "github.com/jlebon/git-bstatus/cmd"

func main() {
	cmd.Execute()
}
