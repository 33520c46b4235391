package main

import "swasthya/internal/cli"

func main() {
	cli.Execute()
}
