package sprite

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Names of the sprites the game looks up.
const (
	AlienA     = "alien_a"    // Alien, first animation frame
	AlienB     = "alien_b"    // Alien, second animation frame
	AlienDead  = "alien_dead" // Alien death burst
	Player     = "player"     // Player ship
	Projectile = "projectile" // Player shot
)

// Required lists the sprites a store must provide for the game to start.
// HUD digits are optional; the score is simply not drawn without them.
var Required = []string{AlienA, AlienB, AlienDead, Player, Projectile}

// DigitName returns the store name of the HUD glyph for digit d (0-9).
func DigitName(d int) string {
	return fmt.Sprintf("digit_%d", d)
}

// Entry is the raw description of one sprite, either as text rows or as 0/1 data.
type Entry struct {
	Name   string
	Width  int
	Height int
	Rows   []string
	Data   []uint8
}

// build validates the entry and turns it into a Sprite.
func (e Entry) build() (*Sprite, error) {
	if len(e.Rows) == 0 {
		return New(e.Width, e.Height, e.Data)
	}

	s, err := FromRows(e.Rows...)
	if err != nil {
		return nil, err
	}
	if (e.Width != 0 && e.Width != s.Width()) || (e.Height != 0 && e.Height != s.Height()) {
		return nil, fmt.Errorf("%w: declared %dx%d, rows describe %dx%d",
			ErrDimensionMismatch, e.Width, e.Height, s.Width(), s.Height())
	}
	return s, nil
}

// Store is a read-only set of named sprites.
type Store struct {
	sprites map[string]*Sprite
	names   []string
}

// NewStore validates every entry and builds the store.
// Any malformed entry fails the whole store: a corrupt asset must not start a session.
func NewStore(entries []Entry) (*Store, error) {
	st := &Store{
		sprites: make(map[string]*Sprite, len(entries)),
		names:   make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("sprite: entry without a name")
		}
		if _, exists := st.sprites[e.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}

		s, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", e.Name, err)
		}

		st.sprites[e.Name] = s
		st.names = append(st.names, e.Name)
	}

	sort.Strings(st.names)
	return st, nil
}

// Get returns the sprite registered under name.
func (s *Store) Get(name string) (*Sprite, bool) {
	sp, ok := s.sprites[name]
	return sp, ok
}

// MustGet returns the sprite registered under name and panics if it is absent.
// Only use it for names already checked with Require.
func (s *Store) MustGet(name string) *Sprite {
	sp, ok := s.sprites[name]
	if !ok {
		panic(fmt.Sprintf("sprite: %q not in store", name))
	}
	return sp
}

// Require checks that every listed name is present.
func (s *Store) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := s.sprites[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAsset, strings.Join(missing, ", "))
	}
	return nil
}

// Names returns all sprite names in sorted order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of sprites in the store.
func (s *Store) Len() int {
	return len(s.sprites)
}
