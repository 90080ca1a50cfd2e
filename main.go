package main

import "github.com/leofalp/calcagent/cmd"

func main() {
	cmd.Execute()
}
