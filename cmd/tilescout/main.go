package main

import "github.com/geoharvest/tilescout/internal/cmd"

func main() {
	cmd.Execute()
}
