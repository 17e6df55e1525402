package main

import "timelog/cmd/timelog-cli/cmd"

func main() {
	cmd.Execute()
}
