package main

import "github.com/LeJamon/namedvec/internal/cli"

func main() {
	cli.Execute()
}
