package main

import "gallery-build/cmd"

func main() {
	cmd.Execute()
}
