package main

import "github.com/Mohsinsiddi/plzscan/cmd"

func main() {
	cmd.Execute()
}
