package main

import "github.com/als-computing/splash-userservice/cmd"

func main() {
	cmd.Execute()
}
