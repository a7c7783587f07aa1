package main

import "playhist/cmd"

func main() {
	cmd.Execute()
}
