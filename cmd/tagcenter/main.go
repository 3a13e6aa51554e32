package main

import "github.com/tagcenter/tagcenter/internal/cli"

func main() {
	cli.Execute()
}
