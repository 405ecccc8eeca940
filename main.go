package main

import "csspress/cmd"

func main() {
	cmd.Execute()
}
