package main

import "github.com/oshokin/viertel-sieben/cmd/viertel-sieben/cmd"

func main() {
	cmd.Execute()
}
