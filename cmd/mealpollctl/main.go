package main

import "mealpoll-go/cmd/mealpollctl/commands"

func main() {
	commands.Execute()
}
