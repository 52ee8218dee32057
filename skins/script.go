package skins

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Pattern is the decoration drawn over the ball's body.
type Pattern string

const (
	PatternPentagons Pattern = "pentagons"
	PatternStars     Pattern = "stars"
	PatternRings     Pattern = "rings"
	PatternFlames    Pattern = "flames"
)

// Palette is what a skin script produces for one frame.
type Palette struct {
	Base    color.RGBA
	Edge    color.RGBA
	Accent  color.RGBA
	Glow    float64
	Pattern Pattern
}

// Fallback is used whenever a script cannot be evaluated.
var Fallback = Palette{
	Base:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Edge:    color.RGBA{R: 221, G: 221, B: 221, A: 255},
	Accent:  color.RGBA{R: 33, G: 33, B: 33, A: 255},
	Pattern: PatternPentagons,
}

// Skin is a compiled skin script. Scripts read the globals tick and speed
// and define base, edge, accent (RGB arrays), glow (0..1) and pattern.
type Skin struct {
	Name string

	mu       sync.Mutex
	compiled *tengo.Compiled
	reported bool
}

// Compile compiles src and evaluates it once to validate its output.
func Compile(name string, src []byte) (*Skin, error) {
	script := tengo.NewScript(src)
	for _, global := range []string{"tick", "speed"} {
		if err := script.Add(global, 0.0); err != nil {
			return nil, fmt.Errorf("skins: compile %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("skins: compile %s: %w", name, err)
	}

	s := &Skin{Name: name, compiled: compiled}
	if _, err := s.eval(0, 0); err != nil {
		return nil, err
	}
	return s, nil
}

// Palette evaluates the script for the given frame. Errors are logged once
// per skin and yield Fallback.
func (s *Skin) Palette(tick uint64, speed float64) Palette {
	if s == nil {
		return Fallback
	}
	p, err := s.eval(tick, speed)
	if err != nil {
		s.mu.Lock()
		if !s.reported {
			log.Printf("skins: %v", err)
			s.reported = true
		}
		s.mu.Unlock()
		return Fallback
	}
	return p
}

func (s *Skin) eval(tick uint64, speed float64) (Palette, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.compiled.Set("tick", float64(tick)); err != nil {
		return Fallback, fmt.Errorf("skins: %s: %w", s.Name, err)
	}
	if err := s.compiled.Set("speed", speed); err != nil {
		return Fallback, fmt.Errorf("skins: %s: %w", s.Name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return Fallback, fmt.Errorf("skins: run %s: %w", s.Name, err)
	}

	var p Palette
	var err error
	if p.Base, err = s.rgb("base"); err != nil {
		return Fallback, err
	}
	if p.Edge, err = s.rgb("edge"); err != nil {
		p.Edge = p.Base
	}
	if p.Accent, err = s.rgb("accent"); err != nil {
		return Fallback, err
	}

	p.Glow = 0
	if s.compiled.IsDefined("glow") {
		p.Glow = min(max(s.compiled.Get("glow").Float(), 0), 1)
	}

	p.Pattern = PatternPentagons
	if s.compiled.IsDefined("pattern") {
		switch pat := Pattern(s.compiled.Get("pattern").String()); pat {
		case PatternPentagons, PatternStars, PatternRings, PatternFlames:
			p.Pattern = pat
		}
	}
	return p, nil
}

func (s *Skin) rgb(name string) (color.RGBA, error) {
	if !s.compiled.IsDefined(name) {
		return color.RGBA{}, fmt.Errorf("skins: %s: %s is not defined", s.Name, name)
	}
	arr := s.compiled.Get(name).Array()
	if len(arr) != 3 {
		return color.RGBA{}, fmt.Errorf("skins: %s: %s must be [r, g, b]", s.Name, name)
	}

	var ch [3]uint8
	for i, v := range arr {
		var f float64
		switch n := v.(type) {
		case int64:
			f = float64(n)
		case float64:
			f = n
		default:
			return color.RGBA{}, fmt.Errorf("skins: %s: %s[%d] is not a number", s.Name, name, i)
		}
		ch[i] = uint8(min(max(f, 0), 255))
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}
