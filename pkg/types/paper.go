// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper holds one academic work in the library.
type Paper struct {
	// ID uniquely identifies the paper within the library. It is assigned
	// once at creation and never reused, even after deletion.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// DOI is the digital object identifier, when known.
	DOI string `json:"doi" yaml:"doi"`

	// Journal is the publication venue.
	Journal string `json:"journal" yaml:"journal"`

	// Date is free-form text carried over from the source; it has no
	// calendar semantics.
	Date string `json:"date" yaml:"date"`

	// Notes is user-editable text attached to the paper.
	Notes string `json:"notes" yaml:"notes"`

	// TranslatedTitle and TranslatedAbstract are present only after a
	// successful translation.
	TranslatedTitle    string `json:"translated_title,omitempty" yaml:"translated_title,omitempty"`
	TranslatedAbstract string `json:"translated_abstract,omitempty" yaml:"translated_abstract,omitempty"`
}

// PaperFields is the partially-populated metadata shape produced by
// extraction, before it becomes a library Paper. All six fields are
// present after normalization; absent source values become "" or an
// empty slice.
type PaperFields struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Abstract string   `json:"abstract"`
	DOI      string   `json:"doi"`
	Journal  string   `json:"journal"`
	Date     string   `json:"date"`
}
