// Package clipboard copies selected entities as JSON and pastes them back
// as new entities, recording the paste in the edit log.
package clipboard

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bethropolis/hollow/internal/document"
	"github.com/bethropolis/hollow/internal/editlog"
	"github.com/bethropolis/hollow/internal/logger"
	"github.com/bethropolis/hollow/internal/types"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const payloadVersion = 1

// ErrNotEntities is returned when the clipboard holds something else.
var ErrNotEntities = errors.New("clipboard does not hold map entities")

type brushEntry struct {
	ID   types.ID        `json:"id"`
	Data types.BrushData `json:"data"`
}

type thingEntry struct {
	ID   types.ID            `json:"id"`
	Data types.ThingInstance `json:"data"`
}

// Manager handles entity copy and paste.
type Manager struct {
	backend Backend
}

// NewManager creates a manager writing to backend.
func NewManager(backend Backend) *Manager {
	return &Manager{backend: backend}
}

// Encode builds the clipboard payload for the given entities.
func Encode(doc *document.Document, ids []types.ID) (string, error) {
	payload, err := sjson.Set("", "hollow", payloadVersion)
	if err != nil {
		return "", err
	}
	for _, id := range ids {
		if b, ok := doc.Brush(id); ok {
			payload, err = sjson.Set(payload, "brushes.-1", brushEntry{ID: id, Data: b.Data})
		} else if t, ok := doc.Thing(id); ok {
			payload, err = sjson.Set(payload, "things.-1", thingEntry{ID: id, Data: t.Data})
		}
		if err != nil {
			return "", fmt.Errorf("failed to encode entity %d: %w", id, err)
		}
	}
	return payload, nil
}

// Decode parses a clipboard payload.
func Decode(payload string) ([]brushEntry, []thingEntry, error) {
	if !gjson.Valid(payload) || gjson.Get(payload, "hollow").Int() != payloadVersion {
		return nil, nil, ErrNotEntities
	}
	var (
		brushes []brushEntry
		things  []thingEntry
		err     error
	)
	gjson.Get(payload, "brushes").ForEach(func(_, v gjson.Result) bool {
		var e brushEntry
		if err = json.Unmarshal([]byte(v.Raw), &e); err != nil {
			return false
		}
		brushes = append(brushes, e)
		return true
	})
	if err != nil {
		return nil, nil, fmt.Errorf("invalid brush in clipboard: %w", err)
	}
	gjson.Get(payload, "things").ForEach(func(_, v gjson.Result) bool {
		var e thingEntry
		if err = json.Unmarshal([]byte(v.Raw), &e); err != nil {
			return false
		}
		things = append(things, e)
		return true
	})
	if err != nil {
		return nil, nil, fmt.Errorf("invalid thing in clipboard: %w", err)
	}
	return brushes, things, nil
}

// Copy writes the selected entities to the clipboard and returns how many
// were copied.
func (m *Manager) Copy(doc *document.Document) (int, error) {
	ids := doc.Selected()
	if len(ids) == 0 {
		return 0, nil
	}
	payload, err := Encode(doc, ids)
	if err != nil {
		return 0, err
	}
	if err := m.backend.Write(payload); err != nil {
		return 0, err
	}
	logger.DebugTagf("clipboard", "Copied %d entities (%d bytes)", len(ids), len(payload))
	return len(ids), nil
}

// Cut copies the selected entities and despawns them.
func (m *Manager) Cut(doc *document.Document, log *editlog.Log) (int, error) {
	n, err := m.Copy(doc)
	if err != nil || n == 0 {
		return n, err
	}

	things := doc.SelectedThings()
	for _, id := range things {
		doc.DeselectEntity(id)
	}
	log.EntityDeselection(things...)
	for _, id := range things {
		log.ThingDespawn(id, doc.DespawnThing(id, false))
	}
	for _, id := range doc.SelectedBrushes() {
		log.BrushDespawn(id, doc.DespawnBrush(id, types.BrushSelected), true)
	}
	log.OverrideEditTag("Cut")
	return n, nil
}

// Paste spawns copies of the clipboard entities moved by offset. The pasted
// entities replace the selection. Anchors between pasted entities are
// carried over; anchors to anything else are dropped.
func (m *Manager) Paste(doc *document.Document, log *editlog.Log, offset types.Vec2) ([]types.ID, error) {
	payload, err := m.backend.Read()
	if err != nil {
		return nil, err
	}
	brushes, things, err := Decode(payload)
	if err != nil {
		return nil, err
	}
	if len(brushes)+len(things) == 0 {
		return nil, nil
	}

	remap := make(map[types.ID]types.ID, len(brushes)+len(things))
	for _, b := range brushes {
		remap[b.ID] = doc.NewID()
	}
	for _, t := range things {
		remap[t.ID] = doc.NewID()
	}

	prev := doc.Selected()
	for _, id := range prev {
		doc.DeselectEntity(id)
	}
	log.EntityDeselection(prev...)

	var pasted []types.ID
	for _, t := range things {
		id := remap[t.ID]
		t.Data.Pos = t.Data.Pos.Add(offset)
		doc.SpawnThing(id, t.Data, false)
		log.ThingSpawn(id)
		pasted = append(pasted, id)
	}
	for _, b := range brushes {
		id := remap[b.ID]
		b.Data.Polygon.Translate(offset)
		b.Data.Polygon.DeselectAll()
		var anchors []types.ID
		for _, a := range b.Data.Anchors {
			if n, ok := remap[a]; ok {
				anchors = append(anchors, n)
			}
		}
		b.Data.Anchors = anchors
		doc.SpawnBrush(id, b.Data, types.BrushSelected)
		log.BrushSpawn(id, true)
		pasted = append(pasted, id)
	}

	var selectThings []types.ID
	for _, t := range things {
		selectThings = append(selectThings, remap[t.ID])
		doc.SelectEntity(remap[t.ID])
	}
	log.EntitySelection(selectThings...)
	log.OverrideEditTag("Paste")
	logger.DebugTagf("clipboard", "Pasted %d brushes and %d things", len(brushes), len(things))
	return pasted, nil
}
