package main

import "github.com/hexsight/prospector/cmd"

func main() {
	cmd.Execute()
}
