package main

import "github.com/masmgr/git-changelog/cmd"

func main() {
	cmd.Run()
}
