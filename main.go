package main

import (
	"github.com/carson-networks/budget-analytics/cmd"
)

func main() {
	cmd.Execute()
}
