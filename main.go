package main

import "github.com/kamal-hamza/datestamp/cmd"

func main() {
	cmd.Execute()
}
