package main

import "github.com/WTuneSeeker/Pingo-Release-sub000/internal/cli"

func main() {
	cli.Execute()
}
