//go:build tinygo

package main

import (
	"unitcircle/explorer"
	"unitcircle/hal"
)

func main() {
	h := hal.New()
	e := explorer.New(h, explorer.Config{StartAngle: 45})
	if err := e.Run(h.Time()); err != nil {
		h.Logger().WriteLineString("explorer: " + err.Error())
	}
}
