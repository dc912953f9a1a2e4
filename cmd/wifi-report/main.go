package main

import "github.com/wifi-on-ice/dashboard/cmd/wifi-report/cmd"

func main() {
	cmd.Execute()
}
