package api

import (
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/morikuni/failure/v2"
	"gopkg.in/yaml.v3"
)

var defaultDocuments = []Document{
	{ID: "deposition.md", Content: "This deposition covers the testimony of Angela Smith, P.E."},
	{ID: "report.pdf", Content: "The report details the state of a 20m condenser tower."},
	{ID: "financials.docx", Content: "These financials outline the project's budget and expenditures."},
	{ID: "outlook.pdf", Content: "This document presents the projected future performance of the system."},
	{ID: "plan.md", Content: "The plan outlines the steps for the project's implementation."},
	{ID: "spec.txt", Content: "These specifications define the technical requirements for the equipment."},
}

// DefaultDocuments returns a copy of the built-in mock documents
func DefaultDocuments() []Document {
	return slices.Clone(defaultDocuments)
}

// seedFile is the on-disk layout of a seed:
//
//	documents:
//	  - id: plan.md
//	    content: The plan outlines ...
type seedFile struct {
	Documents []Document `yaml:"documents"`
}

// LoadSeed decodes a YAML seed from r
func LoadSeed(r io.Reader) ([]Document, error) {
	var seed seedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		if err == io.EOF {
			return []Document{}, nil
		}
		return nil, failure.Wrap(err, failure.WithCode(ErrInvalidSeed),
			failure.Message("Failed to decode seed"),
		)
	}

	for i, d := range seed.Documents {
		if d.ID == "" {
			return nil, failure.New(ErrInvalidSeed,
				failure.Message("Seed document is missing an id"),
				failure.Context{
					"index": strconv.Itoa(i),
				},
			)
		}
	}

	if seed.Documents == nil {
		return []Document{}, nil
	}
	return seed.Documents, nil
}

// LoadSeedFile reads a YAML seed from path
func LoadSeedFile(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrInvalidSeed),
			failure.Message("Failed to open seed file"),
			failure.Context{
				"path": path,
			},
		)
	}
	defer f.Close()

	docs, err := LoadSeed(f)
	if err != nil {
		return nil, failure.Wrap(err, failure.Context{"path": path})
	}
	return docs, nil
}

// OpenStore returns the default store, or a store seeded from seedPath when it is set
func OpenStore(seedPath string) (*Store, error) {
	if seedPath == "" {
		return NewDefaultStore(), nil
	}
	docs, err := LoadSeedFile(seedPath)
	if err != nil {
		return nil, err
	}
	return NewStore(docs)
}
