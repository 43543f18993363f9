package main

import "findash/cmd"

func main() {
	cmd.Execute()
}
