package api

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func TestDefaultStoreListIDs(t *testing.T) {
	want := []string{
		"deposition.md",
		"report.pdf",
		"financials.docx",
		"outlook.pdf",
		"plan.md",
		"spec.txt",
	}

	got := NewDefaultStore().ListIDs()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListIDs() mismatch (-want +got):\n%s", diff)
	}
}

func TestListIDsReturnsCopy(t *testing.T) {
	s := NewDefaultStore()
	ids := s.ListIDs()
	ids[0] = "changed"

	if got := s.ListIDs()[0]; got != "deposition.md" {
		t.Errorf("ListIDs()[0] = %q after mutating a previous result, want %q", got, "deposition.md")
	}
}

func TestReadAndFetchMatchSeed(t *testing.T) {
	s := NewDefaultStore()

	for _, d := range DefaultDocuments() {
		t.Run(d.ID, func(t *testing.T) {
			read, err := s.Read(d.ID)
			if err != nil {
				t.Fatalf("Read(%q) unexpected error: %v", d.ID, err)
			}
			fetched, err := s.Fetch(d.ID)
			if err != nil {
				t.Fatalf("Fetch(%q) unexpected error: %v", d.ID, err)
			}
			if read != d.Content {
				t.Errorf("Read(%q) = %q, want %q", d.ID, read, d.Content)
			}
			if read != fetched {
				t.Errorf("Read(%q) = %q, Fetch = %q", d.ID, read, fetched)
			}
		})
	}
}

func TestUnknownDocument(t *testing.T) {
	const docID = "missing.md"
	wantMessage := "Doc with id missing.md not found."

	tests := []struct {
		name string
		call func(s *Store) error
	}{
		{
			name: "Read",
			call: func(s *Store) error {
				_, err := s.Read(docID)
				return err
			},
		},
		{
			name: "Fetch",
			call: func(s *Store) error {
				_, err := s.Fetch(docID)
				return err
			},
		},
		{
			name: "Edit",
			call: func(s *Store) error {
				return s.Edit(docID, "a", "b")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDefaultStore()

			err := tt.call(s)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !failure.Is(err, ErrDocumentNotFound) {
				t.Errorf("Expected error %v, got %v", ErrDocumentNotFound, err)
			}
			if got := UserMessage(err); got != wantMessage {
				t.Errorf("UserMessage() = %q, want %q", got, wantMessage)
			}

			for _, d := range DefaultDocuments() {
				if got, _ := s.Read(d.ID); got != d.Content {
					t.Errorf("Read(%q) = %q after failed call, want %q", d.ID, got, d.Content)
				}
			}
		})
	}
}

func TestEdit(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		oldString string
		newString string
		want      string
	}{
		{
			name:      "Single occurrence",
			content:   "These specifications define the technical requirements for the equipment.",
			oldString: "technical requirements",
			newString: "technical and safety requirements",
			want:      "These specifications define the technical and safety requirements for the equipment.",
		},
		{
			name:      "Every occurrence",
			content:   "a-b-a-b-a",
			oldString: "a",
			newString: "c",
			want:      "c-b-c-b-c",
		},
		{
			name:      "Non-overlapping",
			content:   "aaaa",
			oldString: "aa",
			newString: "b",
			want:      "bb",
		},
		{
			name:      "No occurrence",
			content:   "The plan outlines the steps.",
			oldString: "budget",
			newString: "cost",
			want:      "The plan outlines the steps.",
		},
		{
			name:      "Case sensitive",
			content:   "The plan outlines the steps.",
			oldString: "the plan",
			newString: "a plan",
			want:      "The plan outlines the steps.",
		},
		{
			name:      "Whitespace sensitive",
			content:   "two  spaces",
			oldString: "two spaces",
			newString: "one",
			want:      "two  spaces",
		},
		{
			name:      "Replace with itself",
			content:   "The report details the state of a 20m condenser tower.",
			oldString: "report",
			newString: "report",
			want:      "The report details the state of a 20m condenser tower.",
		},
		{
			name:      "Delete text",
			content:   "The plan outlines the steps.",
			oldString: " the steps",
			newString: "",
			want:      "The plan outlines.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStore([]Document{{ID: "doc", Content: tt.content}})
			if err != nil {
				t.Fatalf("NewStore() unexpected error: %v", err)
			}

			if err := s.Edit("doc", tt.oldString, tt.newString); err != nil {
				t.Fatalf("Edit() unexpected error: %v", err)
			}

			got, err := s.Read("doc")
			if err != nil {
				t.Fatalf("Read() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Read() after Edit() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEditOnlyTouchesTarget(t *testing.T) {
	s := NewDefaultStore()

	if err := s.Edit("spec.txt", "technical requirements", "technical and safety requirements"); err != nil {
		t.Fatalf("Edit() unexpected error: %v", err)
	}

	for _, d := range DefaultDocuments() {
		got, err := s.Read(d.ID)
		if err != nil {
			t.Fatalf("Read(%q) unexpected error: %v", d.ID, err)
		}
		want := d.Content
		if d.ID == "spec.txt" {
			want = "These specifications define the technical and safety requirements for the equipment."
		}
		if got != want {
			t.Errorf("Read(%q) = %q, want %q", d.ID, got, want)
		}
	}
}

func TestNewStore(t *testing.T) {
	t.Run("Preserves order", func(t *testing.T) {
		s, err := NewStore([]Document{
			{ID: "z.txt", Content: "last"},
			{ID: "a.txt", Content: ""},
		})
		if err != nil {
			t.Fatalf("NewStore() unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"z.txt", "a.txt"}, s.ListIDs()); diff != "" {
			t.Errorf("ListIDs() mismatch (-want +got):\n%s", diff)
		}
		if got, err := s.Read("a.txt"); err != nil || got != "" {
			t.Errorf("Read(%q) = %q, %v, want empty content", "a.txt", got, err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		s, err := NewStore(nil)
		if err != nil {
			t.Fatalf("NewStore() unexpected error: %v", err)
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d, want 0", s.Len())
		}
		if ids := s.ListIDs(); ids == nil || len(ids) != 0 {
			t.Errorf("ListIDs() = %#v, want empty non-nil slice", ids)
		}
	})

	t.Run("Duplicate ids", func(t *testing.T) {
		_, err := NewStore([]Document{
			{ID: "a.txt", Content: "one"},
			{ID: "a.txt", Content: "two"},
		})
		if !failure.Is(err, ErrDuplicateDocument) {
			t.Errorf("Expected error %v, got %v", ErrDuplicateDocument, err)
		}
	})
}

func TestConcurrentAccess(t *testing.T) {
	s, err := NewStore([]Document{{ID: "doc", Content: strings.Repeat("x", 64)}})
	if err != nil {
		t.Fatalf("NewStore() unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := s.Edit("doc", "x", "y"); err != nil {
				t.Errorf("Edit() unexpected error: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := s.Read("doc"); err != nil {
				t.Errorf("Read() unexpected error: %v", err)
			}
			_ = s.ListIDs()
		}()
	}
	wg.Wait()

	got, _ := s.Read("doc")
	if want := strings.Repeat("y", 64); got != want {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}
