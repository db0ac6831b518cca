package perlin

import "time"

// Clock supplies the seed for generators created without an explicit one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock. Generators seeded from it are not reproducible.
var SystemClock Clock = systemClock{}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
