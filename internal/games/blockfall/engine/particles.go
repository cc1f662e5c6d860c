package engine

// Particle is a decorative fragment spawned from a line clear. Positions are
// in board cell units with fractional precision; velocities are cells per
// second. Particles carry no gameplay meaning.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  Color
}

// particlesPerCell controls burst density.
const particlesPerCell = 3

// Burst converts a clear event into a particle spray, one small cluster per
// cleared cell, colored like the cell it came from. The RNG passed in should
// be a presentation stream, never the gameplay stream.
func Burst(ev ClearEvent, rng *RNG) []Particle {
	var out []Particle
	for i, row := range ev.Rows {
		colors := ev.Colors[i]
		for col, c := range colors {
			if c == ColorNone {
				continue
			}
			for n := 0; n < particlesPerCell; n++ {
				out = append(out, Particle{
					X:     float64(col) + rng.Next(),
					Y:     float64(row) + rng.Next(),
					VX:    (rng.Next() - 0.5) * 8,
					VY:    -2 - rng.Next()*4,
					Life:  0.4 + rng.Next()*0.4,
					Color: c,
				})
			}
		}
	}
	return out
}

// Advance moves particles by dt seconds under light gravity and drops the
// expired ones in place, returning the surviving slice.
func Advance(parts []Particle, dt float64) []Particle {
	const gravity = 12.0
	live := parts[:0]
	for _, p := range parts {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += gravity * dt
		live = append(live, p)
	}
	return live
}
