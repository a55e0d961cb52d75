package main

import "github.com/hgroves/togglcon/internal/cli"

func main() {
	cli.Execute()
}
