package main

import "github.com/sevginserbest/portal/cmd"

func main() {
	cmd.Execute()
}
