package sim

import "github.com/jakecoffman/cp"

// SpawnBlast adds a shockwave and a particle burst at pos.
func SpawnBlast(w *World, pos cp.Vector) {
	s := w.Layout.Scale
	w.Shockwaves = append(w.Shockwaves, Shockwave{
		Pos:    pos,
		Radius: ShockwaveRadius * s,
		Speed:  ShockwaveSpeed * s,
		Alpha:  1,
		Width:  ShockwaveWidth * s,
	})

	rng := w.Rand()
	for i := 0; i < BlastParticles; i++ {
		w.Particles = append(w.Particles, Particle{
			Pos: pos,
			Vel: cp.Vector{
				X: (rng.Float64() - 0.5) * ParticleSpread,
				Y: (rng.Float64() - 0.5) * ParticleSpread,
			},
			Life: 1,
			Size: rng.Float64()*ParticleSizeRange + ParticleMinSize,
			Gold: rng.Float64() > 0.5,
		})
	}
}

// AdvanceParticles moves every particle one tick and drops the expired ones
// in place.
func AdvanceParticles(ps []Particle) []Particle {
	kept := ps[:0]
	for _, p := range ps {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= ParticleDecay
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// AdvanceShockwaves grows and fades every shockwave one tick and drops the
// invisible ones in place.
func AdvanceShockwaves(ws []Shockwave) []Shockwave {
	kept := ws[:0]
	for _, s := range ws {
		s.Radius += s.Speed
		s.Alpha -= ShockwaveFade
		s.Width *= ShockwaveWidthDecay
		if s.Alpha <= 0 {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
