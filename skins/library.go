package skins

import (
	"log"
	"sync"
)

// Library caches compiled skins, reading overrides from dir.
type Library struct {
	dir string

	mu    sync.Mutex
	skins map[string]*Skin
}

func NewLibrary(dir string) *Library {
	return &Library{dir: dir, skins: make(map[string]*Skin)}
}

// Get returns the named skin. Unknown or broken skins resolve to the
// built-in classic skin; if even that fails the result is nil, whose
// Palette is Fallback.
func (l *Library) Get(name string) *Skin {
	name = cleanName(name)

	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.skins[name]; ok {
		return s
	}

	s, err := l.compile(l.dir, name)
	if err != nil {
		log.Printf("%v; using %s", err, Default)
		s, err = l.compile("", Default)
		if err != nil {
			log.Printf("%v", err)
		}
	}
	l.skins[name] = s
	return s
}

func (l *Library) compile(dir, name string) (*Skin, error) {
	src, err := Load(dir, name)
	if err != nil {
		return nil, err
	}
	return Compile(name, src)
}

// Invalidate drops the cached skin for a changed script file.
func (l *Library) Invalidate(path string) {
	name := NameOf(path)

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.skins, name)
}
