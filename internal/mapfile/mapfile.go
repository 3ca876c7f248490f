// Package mapfile reads and writes maps as TOML.
package mapfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/types"
)

// FormatVersion is written to every saved map.
const FormatVersion = 1

// BrushEntry is a brush as stored on disk.
type BrushEntry struct {
	ID types.ID `toml:"id"`
	types.BrushData
}

// ThingEntry is a thing as stored on disk.
type ThingEntry struct {
	ID types.ID `toml:"id"`
	types.ThingInstance
}

// File is the on-disk layout of a map.
type File struct {
	Version  int                        `toml:"version"`
	Brushes  []BrushEntry               `toml:"brushes,omitempty"`
	Things   []ThingEntry               `toml:"things,omitempty"`
	Defaults map[string]types.Animation `toml:"default_animations,omitempty"`
}

// FromDocument captures the persistent part of a document. Vertex and node
// selection flags belong to the tools and are not written.
func FromDocument(doc *document.Document) File {
	f := File{Version: FormatVersion}
	for _, id := range doc.BrushIDs() {
		b, _ := doc.Brush(id)
		b.Data.Polygon.DeselectAll()
		if b.Data.Path != nil {
			deselectNodes(b.Data.Path)
		}
		f.Brushes = append(f.Brushes, BrushEntry{ID: id, BrushData: b.Data})
	}
	for _, id := range doc.ThingIDs() {
		t, _ := doc.Thing(id)
		if t.Data.Path != nil {
			deselectNodes(t.Data.Path)
		}
		f.Things = append(f.Things, ThingEntry{ID: id, ThingInstance: t.Data})
	}
	for _, name := range doc.DefaultAnimations() {
		if f.Defaults == nil {
			f.Defaults = make(map[string]types.Animation)
		}
		f.Defaults[name] = doc.DefaultAnimation(name)
	}
	return f
}

func deselectNodes(p *types.Path) {
	for i := range p.Nodes {
		p.Nodes[i].Selected = false
	}
}

// Document builds a fresh document from f.
func (f File) Document() (*document.Document, error) {
	if f.Version > FormatVersion {
		return nil, fmt.Errorf("map format version %d is newer than supported version %d", f.Version, FormatVersion)
	}
	doc := document.New()
	seen := make(map[types.ID]bool, len(f.Brushes)+len(f.Things))
	claim := func(id types.ID) error {
		if id == 0 {
			return fmt.Errorf("entity id 0 is reserved")
		}
		if seen[id] {
			return fmt.Errorf("duplicate entity id %d", id)
		}
		seen[id] = true
		return nil
	}

	for _, b := range f.Brushes {
		if err := claim(b.ID); err != nil {
			return nil, err
		}
		if !b.Polygon.Convex() {
			logger.Warnf("Map: brush %d is not a convex counter-clockwise polygon", b.ID)
		}
		doc.SpawnBrush(b.ID, b.BrushData, types.BrushUnselected)
	}
	for _, t := range f.Things {
		if err := claim(t.ID); err != nil {
			return nil, err
		}
		doc.SpawnThing(t.ID, t.ThingInstance, false)
	}
	for name, a := range f.Defaults {
		doc.SwapAnimation(types.DefaultAnimation(name), a)
	}
	return doc, nil
}

// Encode writes doc as TOML.
func Encode(w io.Writer, doc *document.Document) error {
	if err := toml.NewEncoder(w).Encode(FromDocument(doc)); err != nil {
		return fmt.Errorf("failed to encode map: %w", err)
	}
	return nil
}

// Decode reads a TOML map.
func Decode(r io.Reader) (*document.Document, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Map: unrecognized keys: %v", undecoded)
	}
	return f.Document()
}

// Save writes doc to path. The file is replaced atomically.
func Save(path string, doc *document.Document) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for '%s': %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, doc); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace '%s': %w", path, err)
	}
	logger.Infof("Map saved: %s (%d brushes, %d things)", path, len(doc.BrushIDs()), len(doc.ThingIDs()))
	return nil
}

// Load reads the map at path. A missing file is reported with an error
// wrapping fs.ErrNotExist.
func Load(path string) (*document.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map '%s': %w", path, err)
	}
	defer file.Close()

	doc, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	logger.Infof("Map loaded: %s (%d brushes, %d things)", path, len(doc.BrushIDs()), len(doc.ThingIDs()))
	return doc, nil
}
