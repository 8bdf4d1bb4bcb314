package main

import "github.com/dgallion1/docsect/internal/cli"

func main() {
	cli.Execute()
}
