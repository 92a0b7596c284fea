// Package plantfile reads plant collections from YAML files.
//
// A file either lists collections:
//
//	collections:
//	  - id: office
//	    plants:
//	      - {id: p1, type: tree, height: 1.2, width: 0.8, age: 4, species: Ficus elastica}
//
// or a single anonymous collection under a top-level plants key.
package plantfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"ecomonitor/internal/carbon"
)

// DefaultCollectionID names the collection of a file with a top-level plants list.
const DefaultCollectionID = "default"

type plantEntry struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Height  *float64 `yaml:"height"`
	Width   *float64 `yaml:"width"`
	Age     *float64 `yaml:"age"`
	Species string   `yaml:"species"`
}

type collectionEntry struct {
	ID     string       `yaml:"id"`
	Plants []plantEntry `yaml:"plants"`
}

type document struct {
	Collections []collectionEntry `yaml:"collections"`
	Plants      []plantEntry      `yaml:"plants"`
}

// Load reads and validates the collections of the file at path.
func Load(path string) ([]carbon.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening plant file: %w", err)
	}
	defer f.Close()

	collections, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return collections, nil
}

// Parse decodes and validates collections from r. Unknown keys are rejected.
func Parse(r io.Reader) ([]carbon.Collection, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("plant file is empty")
		}
		return nil, fmt.Errorf("decoding plant file: %w", err)
	}

	if len(doc.Collections) > 0 && len(doc.Plants) > 0 {
		return nil, errors.New("plant file must use either collections or plants, not both")
	}

	entries := doc.Collections
	if len(doc.Collections) == 0 {
		entries = []collectionEntry{{ID: DefaultCollectionID, Plants: doc.Plants}}
	}

	result := make([]carbon.Collection, 0, len(entries))
	for _, c := range entries {
		plants := make([]carbon.Plant, 0, len(c.Plants))
		for _, p := range c.Plants {
			plant, err := p.toModel()
			if err != nil {
				return nil, fmt.Errorf("collection %q: %w", c.ID, err)
			}
			plants = append(plants, plant)
		}
		result = append(result, carbon.Collection{ID: c.ID, Plants: plants})
	}
	return result, nil
}

func (p plantEntry) toModel() (carbon.Plant, error) {
	return carbon.NewPlant(p.ID, p.Name, carbon.PlantType(p.Type), p.Species, p.Height, p.Width, p.Age)
}
