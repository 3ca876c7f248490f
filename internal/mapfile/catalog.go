package mapfile

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/types"
)

// ThingDef describes a placeable thing kind.
type ThingDef struct {
	Kind   types.ThingKind `toml:"kind"`
	Name   string          `toml:"name"`
	Width  float64         `toml:"width"`
	Height float64         `toml:"height"`
}

type catalogFile struct {
	Textures []string   `toml:"textures"`
	Things   []ThingDef `toml:"things"`
}

// Catalog lists the textures and thing kinds maps can reference. Records in
// the edit log refer to catalog entries by name or kind, which is why the
// texture and object edits are purged whenever the catalog is reloaded.
type Catalog struct {
	path     string
	textures map[string]struct{}
	things   map[types.ThingKind]ThingDef
}

// DefaultCatalog is used when no catalog file is configured.
func DefaultCatalog() *Catalog {
	c := &Catalog{}
	c.setTextures([]string{"brick", "concrete", "grass", "metal", "stone", "water"})
	c.setThings([]ThingDef{
		{Kind: 1, Name: "player_start", Width: 1, Height: 2},
		{Kind: 2, Name: "light", Width: 1, Height: 1},
		{Kind: 3, Name: "crate", Width: 2, Height: 2},
	})
	return c
}

// LoadCatalog reads a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := readCatalog(path)
	if err != nil {
		return nil, err
	}
	c := &Catalog{path: path}
	c.setTextures(f.Textures)
	c.setThings(f.Things)
	return c, nil
}

func readCatalog(path string) (catalogFile, error) {
	var f catalogFile
	md, err := toml.DecodeFile(path, &f)
	if errors.Is(err, fs.ErrNotExist) {
		return f, fmt.Errorf("catalog '%s' not found: %w", path, err)
	}
	if err != nil {
		return f, fmt.Errorf("failed to parse catalog '%s': %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Catalog '%s': unrecognized keys: %v", path, undecoded)
	}
	return f, nil
}

func (c *Catalog) setTextures(names []string) {
	c.textures = make(map[string]struct{}, len(names))
	for _, n := range names {
		c.textures[n] = struct{}{}
	}
}

func (c *Catalog) setThings(defs []ThingDef) {
	c.things = make(map[types.ThingKind]ThingDef, len(defs))
	for _, d := range defs {
		if _, dup := c.things[d.Kind]; dup {
			logger.Warnf("Catalog: duplicate thing kind %d (%s), keeping the first", d.Kind, d.Name)
			continue
		}
		c.things[d.Kind] = d
	}
}

// Path returns the file the catalog was read from, empty for the default.
func (c *Catalog) Path() string { return c.path }

// HasTexture reports whether name is a known texture.
func (c *Catalog) HasTexture(name string) bool {
	_, ok := c.textures[name]
	return ok
}

// TextureNames lists the textures in alphabetical order.
func (c *Catalog) TextureNames() []string {
	names := make([]string, 0, len(c.textures))
	for n := range c.textures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Thing returns the definition of a thing kind.
func (c *Catalog) Thing(kind types.ThingKind) (ThingDef, bool) {
	d, ok := c.things[kind]
	return d, ok
}

// Things lists the thing definitions ordered by kind.
func (c *Catalog) Things() []ThingDef {
	defs := make([]ThingDef, 0, len(c.things))
	for _, d := range c.things {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Kind < defs[j].Kind })
	return defs
}

// ReloadTextures rereads the texture list from the catalog file.
func (c *Catalog) ReloadTextures() error {
	if c.path == "" {
		return nil
	}
	f, err := readCatalog(c.path)
	if err != nil {
		return err
	}
	c.setTextures(f.Textures)
	logger.Infof("Catalog: reloaded %d textures", len(c.textures))
	return nil
}

// ReloadThings rereads the thing definitions from the catalog file.
func (c *Catalog) ReloadThings() error {
	if c.path == "" {
		return nil
	}
	f, err := readCatalog(c.path)
	if err != nil {
		return err
	}
	c.setThings(f.Things)
	logger.Infof("Catalog: reloaded %d thing kinds", len(c.things))
	return nil
}
