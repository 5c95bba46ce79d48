//go:build tinygo

package main

import (
	"quarkwire/app"
	"quarkwire/hal"
)

func main() {
	app.Run(hal.New())
}

