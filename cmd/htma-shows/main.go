package main

import "github.com/adires/htma-shows/internal/cli"

func main() {
	cli.Execute()
}
