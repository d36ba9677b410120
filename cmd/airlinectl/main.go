package main

import "github.com/Domenick1991/aerolinea/internal/cli"

func main() {
	cli.Execute()
}
