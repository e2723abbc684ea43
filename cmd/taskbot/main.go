package main

import (
	"github.com/bornholm/taskbot/internal/command"
	"github.com/bornholm/taskbot/internal/command/task"
)

func main() {
	command.Main(
		"taskbot-cli", "manage tasks from the command line",
		task.Commands()...,
	)
}
