package main

import "github.com/quocvuong92/learn-cli/cmd"

func main() {
	cmd.Execute()
}
