package main

import "rsapad/cmd/rsapad/cmd"

func main() {
	cmd.Execute()
}
