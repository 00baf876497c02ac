package main

import "github.com/karvel-dev/bankscope/cmd"

func main() {
	cmd.Execute()
}
