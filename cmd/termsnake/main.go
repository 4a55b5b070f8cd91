package main

import (
	"github.com/battlesnakeio/termsnake/cmd/termsnake/commands"
)

func main() {
	commands.Execute()
}
