package main

import "github.com/nhle/time-budget/cmd"

func main() {
	cmd.Execute()
}
