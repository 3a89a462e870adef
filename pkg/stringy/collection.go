// File: collection.go
// Title: Homogeneous Stringy Collection
// Description: An ordered sequence that only ever holds Stringy values, with
//              bulk prepend and append, iteration, and joining.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Typed insertions bypass the untyped check

package stringy

import (
	"encoding/json"
	"iter"
	"slices"
	"strings"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	mdwlog "github.com/msto63/stringy/foundation/core/log"
)

// Part is a piece of text accepted by Collection.Prepend, Collection.Append,
// AppendStringy and PrependStringy: a Text, a Stringy or a *Collection.
type Part interface {
	text() string
}

// Text is a raw text used as a Part
type Text string

func (t Text) text() string { return string(t) }

func (s Stringy) text() string { return s.str }

func (c *Collection) text() string {
	if c == nil {
		return ""
	}
	return c.Implode("")
}

// Collection is an ordered sequence of Stringy values. Every insertion path
// rejects anything that is not a Stringy. A Collection is not safe for
// concurrent mutation.
type Collection struct {
	items []Stringy
}

// NewCollection returns a collection holding items
func NewCollection(items ...Stringy) *Collection {
	return &Collection{items: slices.Clone(items)}
}

// CreateCollection builds a collection from dynamically typed items. Each
// item must be a Stringy or a non-nil *Stringy.
func CreateCollection(items ...any) (*Collection, error) {
	c := &Collection{items: make([]Stringy, 0, len(items))}
	if err := c.insert("Create", len(c.items), false, items...); err != nil {
		return nil, err
	}
	return c, nil
}

// CollectionFromStrings lifts every raw text to a Stringy
func CollectionFromStrings(raw ...string) *Collection {
	items := make([]Stringy, len(raw))
	for i, str := range raw {
		items[i] = New(str)
	}
	return &Collection{items: items}
}

// insert is the path through which untyped values enter the collection.
// The values are placed at index, or replace the item there when replace is
// set. Nothing is stored unless every value is a Stringy.
func (c *Collection) insert(operation string, index int, replace bool, values ...any) error {
	lifted := make([]Stringy, 0, len(values))
	for _, v := range values {
		switch sv := v.(type) {
		case Stringy:
			lifted = append(lifted, sv)
		case *Stringy:
			if sv == nil {
				return mdwerrors.CollectionTypeMismatch(operation, v)
			}
			lifted = append(lifted, *sv)
		default:
			log().Debug("collection insert rejected",
				mdwlog.String("operation", operation),
				mdwlog.String("kind", mdwerrors.KindOf(v)))
			return mdwerrors.CollectionTypeMismatch(operation, v)
		}
	}

	if replace {
		if index < 0 || index >= len(c.items) {
			return mdwerrors.OutOfRange(mdwerrors.ModuleCollection, operation, index, 0, len(c.items)-1)
		}
		c.items = slices.Replace(c.items, index, index+len(lifted), lifted...)
		return nil
	}
	if index < 0 || index > len(c.items) {
		return mdwerrors.OutOfRange(mdwerrors.ModuleCollection, operation, index, 0, len(c.items))
	}
	c.place(index, lifted...)
	return nil
}

// place inserts already typed values at index, which must lie in 0..Count
func (c *Collection) place(index int, values ...Stringy) {
	c.items = slices.Insert(c.items, index, values...)
}

// Add appends value, which must be a Stringy
func (c *Collection) Add(value any) error {
	return c.insert("Add", len(c.items), false, value)
}

// Set stores value at index. An index equal to Count appends.
func (c *Collection) Set(index int, value any) error {
	if index == len(c.items) {
		return c.insert("Set", index, false, value)
	}
	return c.insert("Set", index, true, value)
}

// AddString lifts raw and appends it
func (c *Collection) AddString(raw string) {
	c.place(len(c.items), New(raw))
}

// AddStringy appends value as is
func (c *Collection) AddStringy(value Stringy) {
	c.place(len(c.items), value)
}

// Prepend inserts the parts, in argument order, before the first item. A
// collection contributes all of its items.
func (c *Collection) Prepend(parts ...Part) {
	c.place(0, expandParts(parts)...)
}

// Append adds the parts, in argument order, after the last item
func (c *Collection) Append(parts ...Part) {
	c.place(len(c.items), expandParts(parts)...)
}

func expandParts(parts []Part) []Stringy {
	values := make([]Stringy, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case Text:
			values = append(values, New(string(v)))
		case Stringy:
			values = append(values, v)
		case *Collection:
			if v == nil {
				continue
			}
			values = append(values, v.items...)
		}
	}
	return values
}

// Count returns the number of items
func (c *Collection) Count() int {
	return len(c.items)
}

// Get returns the item at index
func (c *Collection) Get(index int) (Stringy, bool) {
	if index < 0 || index >= len(c.items) {
		return Stringy{}, false
	}
	return c.items[index], true
}

// GetAll returns a copy of the items
func (c *Collection) GetAll() []Stringy {
	return slices.Clone(c.items)
}

// GetGenerator yields the items in order
func (c *Collection) GetGenerator() iter.Seq[Stringy] {
	return slices.Values(c.items)
}

// All yields index and item pairs in order
func (c *Collection) All() iter.Seq2[int, Stringy] {
	return slices.All(c.items)
}

// ToStrings returns the raw texts of the items
func (c *Collection) ToStrings() []string {
	out := make([]string, len(c.items))
	for i, item := range c.items {
		out[i] = item.str
	}
	return out
}

// Implode joins the texts of the items with separator
func (c *Collection) Implode(separator string) string {
	return strings.Join(c.ToStrings(), separator)
}

// String joins the items without separator
func (c *Collection) String() string {
	return c.Implode("")
}

// MarshalJSON encodes the collection as an array of strings
func (c *Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToStrings())
}
