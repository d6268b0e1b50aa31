package main

import "github.com/entraops/azrm/cmd"

func main() {
	cmd.Execute()
}
