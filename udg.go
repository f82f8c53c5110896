/*
Package udg is a library for editing, converting and cataloguing User Defined
Graphics, the 8 by 8 monochrome character glyphs used by many 8-bit home
computers.
*/
package udg

import "log"

const numWorkers = 10

// UDG runs batch operations over image files
type UDG struct {
	logger *log.Logger
}

// New returns a UDG that logs to logger
func New(logger *log.Logger) *UDG {
	return &UDG{
		logger: logger,
	}
}
