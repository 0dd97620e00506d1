package entities

import (
	"sort"

	"derelict/pkg/engine/grid"
)

// Collection is the keyed entity store shared between snapshots. Clone
// keeps the same entity values in both maps; Mutate copies an entry the
// first time a snapshot writes it, so older snapshots stay stable.
type Collection struct {
	items map[string]Entity
	owned map[string]bool
}

// NewCollection returns an empty store.
func NewCollection() *Collection {
	return &Collection{
		items: make(map[string]Entity),
		owned: make(map[string]bool),
	}
}

// Clone returns a snapshot copy sharing entity values with c. Both
// sides lose write ownership: the next Mutate on either copies first.
func (c *Collection) Clone() *Collection {
	n := &Collection{
		items: make(map[string]Entity, len(c.items)),
		owned: make(map[string]bool),
	}
	for id, e := range c.items {
		n.items[id] = e
	}
	c.owned = make(map[string]bool)
	return n
}

// Add inserts e. IDs must be unique; a duplicate replaces the original.
func (c *Collection) Add(e Entity) {
	c.items[e.ID()] = e
	c.owned[e.ID()] = true
}

// Get returns the entity with the given ID for read-only use.
func (c *Collection) Get(id string) (Entity, bool) {
	e, ok := c.items[id]
	return e, ok
}

// Mutate returns a writable copy of the entity, installing it in this
// snapshot on first use.
func (c *Collection) Mutate(id string) (Entity, bool) {
	e, ok := c.items[id]
	if !ok {
		return nil, false
	}
	if !c.owned[id] {
		e = e.clone()
		c.items[id] = e
		c.owned[id] = true
	}
	return e, true
}

// Remove deletes the entity outright. Used for consumed pickups and the
// spent recovery bot; most exhaustion is a flag flip instead.
func (c *Collection) Remove(id string) {
	delete(c.items, id)
	delete(c.owned, id)
}

// Move repositions an entity through the copy-on-write path.
func (c *Collection) Move(id string, p grid.Point) bool {
	e, ok := c.Mutate(id)
	if !ok {
		return false
	}
	e.setPos(p)
	return true
}

// Len returns the number of live entities.
func (c *Collection) Len() int {
	return len(c.items)
}

// IDs returns every entity ID in sorted order, for deterministic
// iteration.
func (c *Collection) IDs() []string {
	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Each visits entities in sorted-ID order.
func (c *Collection) Each(fn func(Entity)) {
	for _, id := range c.IDs() {
		fn(c.items[id])
	}
}

// At returns the entities standing on p in sorted-ID order.
func (c *Collection) At(p grid.Point) []Entity {
	var out []Entity
	c.Each(func(e Entity) {
		if e.Pos() == p {
			out = append(out, e)
		}
	})
	return out
}

// ByKind returns entities of kind k in sorted-ID order.
func (c *Collection) ByKind(k Kind) []Entity {
	var out []Entity
	c.Each(func(e Entity) {
		if e.Kind() == k {
			out = append(out, e)
		}
	})
	return out
}
