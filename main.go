package main

import "github.com/bgraf/trackstat/cmd"

func main() {
	cmd.Execute()
}
