package particles

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks a Config with a non-positive size.
var ErrInvalidConfig = errors.New("particles: invalid config")

// Config sizes the ring. Both sizes are fixed for the life of a System.
type Config struct {
	// ParticlesPerBuffer is the capacity of each ring segment.
	ParticlesPerBuffer int
	// NumBuffers is the ring length.
	NumBuffers int
	// Label prefixes GPU buffer labels. Defaults to "particles".
	Label string
}

func DefaultConfig() Config {
	return Config{
		ParticlesPerBuffer: 10000,
		NumBuffers:         10,
	}
}

// Capacity is the total number of particle slots in the ring.
func (c Config) Capacity() int {
	return c.NumBuffers * c.ParticlesPerBuffer
}

// Validate reports every non-positive size. Sizes are never clamped.
func (c Config) Validate() error {
	var errs []error
	if c.ParticlesPerBuffer <= 0 {
		errs = append(errs, fmt.Errorf("%w: ParticlesPerBuffer must be > 0, got %d", ErrInvalidConfig, c.ParticlesPerBuffer))
	}
	if c.NumBuffers <= 0 {
		errs = append(errs, fmt.Errorf("%w: NumBuffers must be > 0, got %d", ErrInvalidConfig, c.NumBuffers))
	}
	return errors.Join(errs...)
}

func (c Config) label() string {
	if c.Label == "" {
		return "particles"
	}
	return c.Label
}
