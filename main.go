package main

import "github.com/bmatsuo/minischeme/cmd"

func main() {
	cmd.Execute()
}
