package main

import "github.com/MikeSquared-Agency/Arbiter/internal/cli"

func main() {
	cli.Execute()
}
