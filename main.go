package main

import "github.com/sonic182/hyperstack-api/cmd"

func main() {
	cmd.Execute()
}
