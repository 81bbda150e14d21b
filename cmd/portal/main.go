package main

import (
	"github.com/anishTP/echo-portal-sub004/cmd/portal/cmd"
)

func main() {
	cmd.Execute()
}
