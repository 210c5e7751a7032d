package main

import "github.com/OpenTraceLab/OpenTraceDP/cmd/opendp/cmd"

func main() {
	cmd.Execute()
}
