package main

import (
	"github.com/bornholm/aspect/internal/command"
	"github.com/bornholm/aspect/internal/command/chat"
	"github.com/bornholm/aspect/internal/command/summarise"
)

func main() {
	command.Main(
		"aspect", "composable decorators demo",
		summarise.Command(),
		chat.Command(),
	)
}
