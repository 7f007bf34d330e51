package main

import "github.com/jmcleod/argonpass/cmd/argonpass/cmd"

func main() {
	cmd.Execute()
}
