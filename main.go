package main

import "github.com/redbadger/sitedeploy/cmd"

func main() {
	cmd.Execute()
}
