package main

import "github.com/anonto42/qa-forum/backend/cmd/forumctl/commands"

func main() {
	commands.Execute()
}
