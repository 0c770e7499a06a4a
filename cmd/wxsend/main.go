package main

import "github.com/aalvaropc/wxsend/internal/cli"

func main() {
	cli.Execute()
}
