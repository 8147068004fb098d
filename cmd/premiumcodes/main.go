package main

import "github.com/blackwell-systems/premium-errors/internal/cmd"

func main() {
	cmd.Execute()
}
