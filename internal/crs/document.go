// Package crs orchestrates CRS generation: it resolves body records,
// drives the geodetic and projected WKT builders in a deterministic
// order and aggregates the rendered strings into a document.
package crs

import (
	"fmt"
	"io"
)

// Entry is one rendered CRS definition.
type Entry struct {
	Code int
	Body string
	WKT  string
}

// Document is the append-only, ordered sequence of rendered WKT strings
// produced by a generation run. Authority codes are unique within a
// document.
type Document struct {
	entries []Entry
	codes   map[int]struct{}
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{codes: make(map[int]struct{})}
}

func (d *Document) append(e Entry) error {
	if _, dup := d.codes[e.Code]; dup {
		return fmt.Errorf("duplicate authority code %d (body %s)", e.Code, e.Body)
	}
	d.codes[e.Code] = struct{}{}
	d.entries = append(d.entries, e)
	return nil
}

// Len returns the number of rendered CRS definitions.
func (d *Document) Len() int { return len(d.entries) }

// Entries returns the rendered entries in generation order.
func (d *Document) Entries() []Entry { return d.entries }

// Strings returns the rendered WKT strings in generation order.
func (d *Document) Strings() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.WKT
	}
	return out
}

// WriteTo writes the document as one text stream, one CRS definition per
// logical block separated by a blank line.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, e := range d.entries {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := io.WriteString(w, e.WKT+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
