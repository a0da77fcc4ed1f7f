package main

import "github.com/rollbook/rollbook/cmd"

func main() {
	cmd.Execute()
}
