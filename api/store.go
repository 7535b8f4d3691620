package api

import (
	"slices"
	"strings"
	"sync"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// Document is a named text document held by the Store
type Document struct {
	ID      string `yaml:"id"`
	Content string `yaml:"content"`
}

// Store is an in-memory table of documents keyed by id.
// The set of ids is fixed at construction; only content changes afterwards.
type Store struct {
	mu   sync.Mutex
	ids  []string
	docs map[string]string
}

// NewStore creates a store holding docs. Ids keep the order of the slice.
func NewStore(docs []Document) (*Store, error) {
	if dups := lo.FindDuplicatesBy(docs, func(d Document) string { return d.ID }); len(dups) > 0 {
		return nil, failure.New(ErrDuplicateDocument,
			failure.Message("Seed contains duplicate document ids"),
			failure.Context{
				"doc_id": dups[0].ID,
			},
		)
	}

	s := &Store{
		ids:  make([]string, 0, len(docs)),
		docs: make(map[string]string, len(docs)),
	}
	for _, d := range docs {
		s.ids = append(s.ids, d.ID)
		s.docs[d.ID] = d.Content
	}
	return s, nil
}

// NewDefaultStore creates a store seeded with DefaultDocuments
func NewDefaultStore() *Store {
	s, err := NewStore(DefaultDocuments())
	if err != nil {
		// the literal table has unique ids
		panic(err)
	}
	return s
}

// Read returns the content of the document docID
func (s *Store) Read(docID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.docs[docID]
	if !ok {
		return "", newNotFound(docID)
	}
	return content, nil
}

// Fetch returns the content of the document docID.
// It behaves exactly like Read and backs the resource lookup path.
func (s *Store) Fetch(docID string) (string, error) {
	return s.Read(docID)
}

// Edit replaces every occurrence of oldString with newString in the document docID.
// Matching is exact. A missing oldString leaves the content as is.
func (s *Store) Edit(docID, oldString, newString string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.docs[docID]
	if !ok {
		return newNotFound(docID)
	}
	s.docs[docID] = strings.ReplaceAll(content, oldString, newString)
	return nil
}

// ListIDs returns the ids of all documents in seed order
func (s *Store) ListIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.ids)
}

// Len returns the number of documents
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ids)
}
