// Package catalog holds the meditations and affirmations the app offers.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Catalog is the content offered by the app.
type Catalog struct {
	Meditations []Meditation
	Themes      []Theme
}

// Default returns a copy of the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		Meditations: slices.Clone(builtinMeditations),
		Themes:      make([]Theme, len(builtinThemes)),
	}
	for i, t := range builtinThemes {
		c.Themes[i] = Theme{Name: t.Name, Affirmations: slices.Clone(t.Affirmations)}
	}
	return c
}

type catalogFile struct {
	Meditations []Meditation `koanf:"meditations"`
	Themes      []Theme      `koanf:"themes"`
}

// Load returns the built-in catalog overlaid with the TOML file at path.
// Entries in the file replace built-in ones with the same id (meditations)
// or name (themes) and are appended otherwise. An empty path or a missing
// file gives the built-in catalog.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	var f catalogFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	for i, m := range f.Meditations {
		if m.ID == "" {
			return nil, fmt.Errorf("catalog %s: meditation %d has no id", path, i+1)
		}
		c.putMeditation(m)
	}
	for i, t := range f.Themes {
		if t.Name == "" {
			return nil, fmt.Errorf("catalog %s: theme %d has no name", path, i+1)
		}
		c.putTheme(t)
	}
	return c, nil
}

func (c *Catalog) putMeditation(m Meditation) {
	for i := range c.Meditations {
		if c.Meditations[i].ID == m.ID {
			c.Meditations[i] = m
			return
		}
	}
	c.Meditations = append(c.Meditations, m)
}

func (c *Catalog) putTheme(t Theme) {
	for i := range c.Themes {
		if c.Themes[i].Name == t.Name {
			c.Themes[i] = t
			return
		}
	}
	c.Themes = append(c.Themes, t)
}

// Meditation returns the meditation with the given id.
func (c *Catalog) Meditation(id string) (Meditation, bool) {
	for _, m := range c.Meditations {
		if m.ID == id {
			return m, true
		}
	}
	return Meditation{}, false
}

// ResolveAudio returns a copy of the catalog whose relative audio URLs are
// resolved against base, an HTTP(S) URL or a directory. Absolute paths and
// URLs are kept.
func (c *Catalog) ResolveAudio(base string) (*Catalog, error) {
	out := &Catalog{
		Meditations: slices.Clone(c.Meditations),
		Themes:      c.Themes,
	}
	if base == "" {
		return out, nil
	}
	for i, m := range out.Meditations {
		resolved, err := resolve(base, m.AudioURL)
		if err != nil {
			return nil, fmt.Errorf("resolve audio for %s: %w", m.ID, err)
		}
		out.Meditations[i].AudioURL = resolved
	}
	return out, nil
}

func resolve(base, ref string) (string, error) {
	if ref == "" || isRemote(ref) || strings.HasPrefix(ref, "file://") || filepath.IsAbs(ref) {
		return ref, nil
	}
	if isRemote(base) {
		return url.JoinPath(base, ref)
	}
	return filepath.Join(base, filepath.FromSlash(ref)), nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// RandomAffirmation picks a theme, then an affirmation within it. Themes
// without affirmations are skipped; ok is false if there is nothing to pick.
func (c *Catalog) RandomAffirmation(r *rand.Rand) (a Affirmation, ok bool) {
	themes := make([]Theme, 0, len(c.Themes))
	for _, t := range c.Themes {
		if len(t.Affirmations) > 0 {
			themes = append(themes, t)
		}
	}
	if len(themes) == 0 {
		return Affirmation{}, false
	}
	t := themes[r.IntN(len(themes))]
	return Affirmation{Theme: t.Name, Text: t.Affirmations[r.IntN(len(t.Affirmations))]}, true
}
