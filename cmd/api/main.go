package main

import (
	"investmentplanner/cmd"
)

func main() {
	cmd.Execute()
}
