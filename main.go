package main

import "github.com/shadanan/mediar/internal/cmd"

func main() {
	cmd.Execute()
}
