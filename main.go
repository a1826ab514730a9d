package main

import "router-manager/cmd"

func main() {
	cmd.Execute()
}
