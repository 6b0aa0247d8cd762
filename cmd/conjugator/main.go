package main

import "github.com/svhawkins/czech-verb-conjugator/internal/cli"

func main() {
	cli.Execute()
}
