package listapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawItem is one record as the list service sends it.
type RawItem struct {
	ID             string
	Name           string
	ScientificName string
	// ListNumber is nil when list_number is missing or null.
	ListNumber *int
}

type rawItemWire struct {
	ID             json.RawMessage `json:"id"`
	Name           string          `json:"name"`
	ScientificName string          `json:"scientific_name"`
	ListNumber     json.RawMessage `json:"list_number"`
}

// UnmarshalJSON accepts the id as either a JSON string or a number.
func (r *RawItem) UnmarshalJSON(data []byte) error {
	var w rawItemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	id, err := decodeID(w.ID)
	if err != nil {
		return err
	}

	*r = RawItem{
		ID:             id,
		Name:           w.Name,
		ScientificName: w.ScientificName,
		ListNumber:     decodeListNumber(w.ListNumber),
	}
	return nil
}

// decodeListNumber accepts integers, integral floats (1.0) and numeric
// strings ("2"). Anything else yields nil, so the record is dropped the same
// way as one with no list_number.
func decodeListNumber(raw json.RawMessage) *int {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	text := string(trimmed)
	if trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil
		}
		text = strings.TrimSpace(text)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return nil
	}
	n := int(f)
	return &n
}

func decodeID(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", fmt.Errorf("id must be a string or number, got %s", trimmed)
	}
	return n.String(), nil
}

// Group is one top-level key of the response and the records under it.
type Group struct {
	Key   string
	Items []RawItem
}

// Response is the decoded body of a lists request. Groups are kept in the
// order their keys appear in the document.
type Response struct {
	Groups []Group
}

// UnmarshalJSON decodes a JSON object of arrays while preserving key order.
// A repeated key replaces the earlier value but keeps its first position.
func (r *Response) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object of lists, got %v", tok)
	}

	groups := make([]Group, 0)
	index := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		var items []RawItem
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("group %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			groups[i].Items = items
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Key: key, Items: items})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	r.Groups = groups
	return nil
}

// Items returns every record across all groups in document order.
func (r *Response) Items() []RawItem {
	if r == nil {
		return nil
	}
	all := make([]RawItem, 0, r.ItemCount())
	for _, g := range r.Groups {
		all = append(all, g.Items...)
	}
	return all
}

// ItemCount returns the number of records across all groups.
func (r *Response) ItemCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, g := range r.Groups {
		n += len(g.Items)
	}
	return n
}

// Keys returns the group keys in document order.
func (r *Response) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, len(r.Groups))
	for i, g := range r.Groups {
		keys[i] = g.Key
	}
	return keys
}

// String returns a summary for logs.
func (r *Response) String() string {
	return fmt.Sprintf("Response{groups=[%s], items=%d}", strings.Join(r.Keys(), ","), r.ItemCount())
}
