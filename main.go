package main

import "github.com/theirongolddev/cyros/cmd"

func main() {
	cmd.Execute()
}
