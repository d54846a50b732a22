package main

import "servicelog/cmd/client/cmd"

func main() {
	cmd.Execute()
}
