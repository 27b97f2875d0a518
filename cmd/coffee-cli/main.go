package main

import "buymeacoffee/cmd/coffee-cli/cmd"

func main() {
	cmd.Execute()
}
