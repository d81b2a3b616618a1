package main

import "vaxtrack/cmd/vaxtrack/cmd"

func main() {
	cmd.Execute()
}
