package main

import "github.com/alexiusacademia/asdesign/cmd"

func main() {
	cmd.Execute()
}
