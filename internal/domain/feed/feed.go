// Package feed decodes the update feed's JSON document into a list of
// release categories. It is deliberately tolerant of unknown fields and a
// null "Releases" array, and strict about a missing "Categories" field.
package feed

import (
	"encoding/json"
	"errors"
	"io"

	updateerr "github.com/caldera-labs/aupdate/internal/errors"
)

// RawFile mirrors the feed's optional installer descriptor for one release.
//
//nolint:tagliatelle
type RawFile struct {
	URL            string `json:"Url"`
	Sha512Checksum string `json:"Sha512CheckSum"`
}

// RawRelease mirrors one release entry as it appears in the feed document.
//
//nolint:tagliatelle
type RawRelease struct {
	Version   string   `json:"Version"`
	ChangeLog []string `json:"ChangeLog"`
	File      *RawFile `json:"File"`
}

// Category mirrors one channel bucket ("Stable", "EarlyAccess", ...) as it
// appears in the feed document.
//
//nolint:tagliatelle
type Category struct {
	Name     string       `json:"Name"`
	Releases []RawRelease `json:"Releases"`
}

// document is the top-level feed shape. Categories is a pointer so a feed
// that never mentions the key is distinguishable from one that sets it to
// an empty array. An explicit null also leaves the pointer nil and is
// rejected the same way as a missing key.
type document struct {
	Categories *[]Category `json:"Categories"`
}

// Decode reads the feed document from r. It fails with an *updateerr.Error
// if the stream is empty, not well-formed JSON, or lacks the "Categories"
// field. Unknown fields are ignored; a null "Releases" array decodes to an
// empty, non-nil slice per category.
func Decode(r io.Reader) ([]Category, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, updateerr.New("Decode", updateerr.TransportFailed, err)
	}

	if len(raw) == 0 {
		return nil, updateerr.New("Decode", updateerr.ResponseEmpty, errors.New("empty feed body"))
	}

	var doc document

	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, updateerr.New("Decode", updateerr.FeedMalformed, err)
	}

	if doc.Categories == nil {
		return nil, updateerr.New(
			"Decode", updateerr.FeedMalformed, errors.New("feed document missing Categories field"),
		)
	}

	categories := *doc.Categories

	for i := range categories {
		if categories[i].Releases == nil {
			categories[i].Releases = []RawRelease{}
		}
	}

	return categories, nil
}
