package main

import "task-sync/cmd"

func main() {
	cmd.Execute()
}
