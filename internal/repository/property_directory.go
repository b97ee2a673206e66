package repository

import (
	"strings"
	"sync"

	"github.com/iliyamo/eco-rental-booking/internal/model"
)

// PropertyDirectory is the name-keyed collection of properties for a
// single process run.  Names are unique case-insensitively.  The
// directory guards its own membership with a read-write mutex; state
// inside each property is guarded by the property itself, so booking
// traffic on one property never blocks lookups of another.
//
// The directory holds no durable state: the system is entirely in-memory
// for one process run.
type PropertyDirectory struct {
	mu         sync.RWMutex
	properties []*model.Property // insertion order
}

// NewPropertyDirectory returns an empty directory.
func NewPropertyDirectory() *PropertyDirectory {
	return &PropertyDirectory{properties: make([]*model.Property, 0)}
}

// Create validates and adds a new property.  The name must be non-blank
// and unique, the base price at least the minimum, and the type a known
// category.  On success the created property is returned.
func (d *PropertyDirectory) Create(name string, basePrice float64, ptype model.PropertyType) (*model.Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if basePrice < model.MinBasePrice {
		return nil, model.ErrInvalidPrice
	}
	if !ptype.Valid() {
		return nil, ErrInvalidType
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.findLocked(name) != nil {
		return nil, ErrNameTaken
	}
	p := model.NewProperty(name, basePrice, ptype)
	d.properties = append(d.properties, p)
	return p, nil
}

// Get looks a property up by name, case-insensitively.
func (d *PropertyDirectory) Get(name string) (*model.Property, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if p := d.findLocked(name); p != nil {
		return p, nil
	}
	return nil, ErrPropertyNotFound
}

// List returns every property in insertion order.  The slice is a copy;
// removing or appending to it does not affect the directory.
func (d *PropertyDirectory) List() []*model.Property {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*model.Property, len(d.properties))
	copy(out, d.properties)
	return out
}

// Rename changes a property's name when the old name exists and the new
// name is non-blank and not already in use.  Renaming a property to its
// own name (in any casing) is allowed.
func (d *PropertyDirectory) Rename(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrInvalidName
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	p := d.findLocked(oldName)
	if p == nil {
		return ErrPropertyNotFound
	}
	if other := d.findLocked(newName); other != nil && other != p {
		return ErrNameTaken
	}
	p.Rename(newName)
	return nil
}

// Remove deletes a property from the directory.  Removal is permitted
// only while the property has no active reservations.
func (d *PropertyDirectory) Remove(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, p := range d.properties {
		if strings.EqualFold(p.Name(), name) {
			if !p.CanBeRemoved() {
				return model.ErrHasReservations
			}
			d.properties = append(d.properties[:i], d.properties[i+1:]...)
			return nil
		}
	}
	return ErrPropertyNotFound
}

// IsUniqueName reports whether no property currently uses the name.
func (d *PropertyDirectory) IsUniqueName(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.findLocked(name) == nil
}

// findLocked returns the property with the given name or nil.  Callers
// must hold d.mu.
func (d *PropertyDirectory) findLocked(name string) *model.Property {
	for _, p := range d.properties {
		if strings.EqualFold(p.Name(), name) {
			return p
		}
	}
	return nil
}
