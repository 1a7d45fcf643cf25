package polyscene

import (
	"image/color"
	"log/slog"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

type ItemID int

// UpdateFunc animates an item. t is the time since start, dt the time since
// the previous tick, both in seconds.
type UpdateFunc func(item *Item, t, dt float64)

// Item is one thing in the World. It may hold a shape, and caches the glyph
// built from it until the shape is replaced or edited.
type Item struct {
	id          ItemID
	shape       *Shape
	glyph       *Glyph
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Update      UpdateFunc
}

func NewItem(shape *Shape) *Item {
	return &Item{
		shape:       shape,
		Orientation: mgl64.QuatIdent(),
	}
}

// ID is zero until the item is added to a World.
func (it *Item) ID() ItemID {
	return it.id
}

func (it *Item) Shape() *Shape {
	return it.shape
}

// SetShape replaces the shape and drops the cached glyph.
func (it *Item) SetShape(s *Shape) {
	it.shape = s
	it.glyph = nil
}

// Edit runs fn against the item's shape and drops the cached glyph before
// returning. It does nothing and returns false if there is no shape.
func (it *Item) Edit(fn func(s *Shape)) bool {
	if it.shape == nil {
		return false
	}
	fn(it.shape)
	it.glyph = nil
	return true
}

// Glyph returns the cached glyph, building it first if needed. It returns nil
// when the item has nothing to draw.
func (it *Item) Glyph() *Glyph {
	if it.glyph == nil && !it.shape.IsEmpty() {
		it.glyph = NewGlyph(it.shape)
	}
	return it.glyph
}

// HasGlyph reports whether a glyph is cached, without building one.
func (it *Item) HasGlyph() bool {
	return it.glyph != nil
}

// ModelMatrix maps the item's local space to world space.
func (it *Item) ModelMatrix() mgl64.Mat4 {
	return Placement{Position: it.Position, Orientation: it.Orientation}.Matrix()
}

// World holds every live item, keyed by ID. IDs come from a counter that only
// goes up, so a larger ID always means a more recently added item.
type World struct {
	items    map[ItemID]*Item
	lastID   ItemID
	onAdd    []func(*Item)
	onRemove []func(*Item)
	logger   *slog.Logger

	Background color.RGBA
}

func NewWorld() *World {
	return &World{
		items:      make(map[ItemID]*Item),
		logger:     slog.Default(),
		Background: Orange,
	}
}

func (w *World) SetLogger(l *slog.Logger) {
	w.logger = l
}

func (w *World) OnAdd(fn func(*Item)) {
	w.onAdd = append(w.onAdd, fn)
}

func (w *World) OnRemove(fn func(*Item)) {
	w.onRemove = append(w.onRemove, fn)
}

// Add stores item under a fresh ID and returns it.
func (w *World) Add(item *Item) ItemID {
	w.lastID++
	item.id = w.lastID
	w.items[item.id] = item
	w.logger.Debug("item added", "id", item.id, "shape", item.shape)
	for _, fn := range w.onAdd {
		fn(item)
	}
	return item.id
}

// Remove deletes the item with the given ID, reporting whether it existed.
func (w *World) Remove(id ItemID) bool {
	item, found := w.items[id]
	if !found {
		return false
	}
	delete(w.items, id)
	w.logger.Debug("item removed", "id", id)
	for _, fn := range w.onRemove {
		fn(item)
	}
	return true
}

func (w *World) Item(id ItemID) (*Item, bool) {
	item, found := w.items[id]
	return item, found
}

func (w *World) Len() int {
	return len(w.items)
}

// Items returns the live items in the order they were added.
func (w *World) Items() []*Item {
	items := make([]*Item, 0, len(w.items))
	for _, item := range w.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].id < items[j].id
	})
	return items
}

// Selected returns the most recently added item that has a non-empty shape.
func (w *World) Selected() (*Item, bool) {
	var selected *Item
	for id, item := range w.items {
		if item.shape.IsEmpty() {
			continue
		}
		if selected == nil || id > selected.id {
			selected = item
		}
	}
	return selected, selected != nil
}

// Edit applies fn to the selected item's shape. With nothing selected it
// does nothing and returns false.
func (w *World) Edit(fn func(s *Shape)) bool {
	item, ok := w.Selected()
	if !ok {
		return false
	}
	return item.Edit(fn)
}

// RemoveSelected removes the selected item, if any.
func (w *World) RemoveSelected() bool {
	item, ok := w.Selected()
	if !ok {
		return false
	}
	return w.Remove(item.id)
}

// UpdateAll advances every animated item.
func (w *World) UpdateAll(t, dt float64) {
	for _, item := range w.Items() {
		if item.Update != nil {
			item.Update(item, t, dt)
		}
	}
}
