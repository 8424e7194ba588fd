package main

import "github.com/notargets/gotab/cmd"

func main() {
	cmd.Execute()
}
