// Package export serializes extraction results: a flat JSON artifact and
// optional Go catalog snippets.
package export

import (
	"encoding/json"
	"os"

	"github.com/jchesterman/apothecary/internal/model"
)

// JSON renders the extracted herbs as an indented JSON array, the one
// durable artifact the extractor produces.
func JSON(herbs []model.ExtractedHerb) ([]byte, error) {
	if herbs == nil {
		herbs = []model.ExtractedHerb{}
	}
	return json.MarshalIndent(herbs, "", "  ")
}

// WriteJSON writes the JSON artifact to path.
func WriteJSON(path string, herbs []model.ExtractedHerb) error {
	b, err := JSON(herbs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
