package lists

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/listcraft/listcraft/internal/listapi"
)

func decodeResponse(t *testing.T, body string) *listapi.Response {
	t.Helper()
	var resp listapi.Response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &resp
}

func TestBuildCollections_GroupsByListNumber(t *testing.T) {
	resp := decodeResponse(t, `{
		"first": [
			{"id":"1","name":"Cat","scientific_name":"Felis catus","list_number":2},
			{"id":"2","name":"Dog","scientific_name":"Canis","list_number":1},
			{"id":"3","name":"Ghost","scientific_name":"?"}
		],
		"second": [
			{"id":"4","name":"Cow","scientific_name":"Bos","list_number":2},
			{"id":"5","name":"Eel","scientific_name":"Anguilla","list_number":null},
			{"id":"6","name":"Fox","scientific_name":"Vulpes","list_number":7}
		]
	}`)

	got := BuildCollections(resp)

	want := []Collection{
		{ID: 2, Name: "List 2", Items: []Item{
			{ID: "1", Name: "Cat", ScientificName: "Felis catus", GroupNumber: 2},
			{ID: "4", Name: "Cow", ScientificName: "Bos", GroupNumber: 2},
		}},
		{ID: 1, Name: "List 1", Items: []Item{
			{ID: "2", Name: "Dog", ScientificName: "Canis", GroupNumber: 1},
		}},
		{ID: 7, Name: "List 7", Items: []Item{
			{ID: "6", Name: "Fox", ScientificName: "Vulpes", GroupNumber: 7},
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildCollections() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCollections_PartitionsWithoutLoss(t *testing.T) {
	resp := decodeResponse(t, `{
		"a": [{"id":"1","list_number":1},{"id":"2","list_number":2},{"id":"3"}],
		"b": [{"id":"4","list_number":1},{"id":"5","list_number":null},{"id":"6","list_number":2}]
	}`)

	got := BuildCollections(resp)

	seen := make(map[string]int)
	for _, c := range got {
		for _, it := range c.Items {
			if it.GroupNumber != c.ID {
				t.Errorf("item %s in collection %d has group %d", it.ID, c.ID, it.GroupNumber)
			}
			seen[it.ID]++
		}
	}

	want := map[string]int{"1": 1, "2": 1, "4": 1, "6": 1}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("item membership mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCollections_Empty(t *testing.T) {
	got := BuildCollections(decodeResponse(t, `{}`))
	if len(got) != 0 {
		t.Errorf("expected no collections, got %d", len(got))
	}
	if got := BuildCollections(nil); len(got) != 0 {
		t.Errorf("nil response should give no collections, got %d", len(got))
	}
}

func TestNextCollectionName(t *testing.T) {
	tests := []struct {
		name     string
		existing []Collection
		want     string
	}{
		{"two lists", []Collection{{Name: "List 1"}, {Name: "List 2"}}, "List 3"},
		{"gap collides", []Collection{{Name: "List 1"}, {Name: "List 3"}}, "List 4"},
		{"after a commit", []Collection{{Name: "List 1"}, {Name: "List 2"}, {Name: "List 3"}}, "List 4"},
		{"empty", nil, "List 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextCollectionName(tt.existing); got != tt.want {
				t.Errorf("nextCollectionName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectionClone_Independent(t *testing.T) {
	orig := Collection{ID: 1, Name: "List 1", Items: []Item{{ID: "a"}}}
	cp := orig.Clone()
	cp.Items[0].Name = "changed"
	cp.Items = append(cp.Items, Item{ID: "b"})

	if orig.Items[0].Name != "" || len(orig.Items) != 1 {
		t.Errorf("Clone() shares memory with original: %+v", orig)
	}

	if (Collection{}).Clone().Items != nil {
		t.Error("Clone() of nil items should stay nil")
	}
}

func TestBuildCollections_NumericListNumbers(t *testing.T) {
	resp := decodeResponse(t, `{
		"a": [
			{"id":"1","name":"Cat","list_number":1},
			{"id":"2","name":"Dog","list_number":"1"},
			{"id":"3","name":"Owl","list_number":1.0},
			{"id":"4","name":"Eel","list_number":1.5},
			{"id":"5","name":"Fox","list_number":"two"}
		]
	}`)

	got := BuildCollections(resp)

	want := []Collection{
		{ID: 1, Name: "List 1", Items: []Item{
			{ID: "1", Name: "Cat", GroupNumber: 1},
			{ID: "2", Name: "Dog", GroupNumber: 1},
			{ID: "3", Name: "Owl", GroupNumber: 1},
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildCollections() mismatch (-want +got):\n%s", diff)
	}
}
