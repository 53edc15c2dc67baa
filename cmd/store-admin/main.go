package main

import "github.com/backoffice-labs/store-admin/cmd/store-admin/commands"

func main() {
	commands.Execute()
}
