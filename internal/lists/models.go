package lists

import "fmt"

// Item is one entry of a collection.
type Item struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
	GroupNumber    int    `json:"list_number"`
}

// Collection is a named, ordered group of items.
type Collection struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Items      []Item `json:"items"`
	IsSelected bool   `json:"is_selected"`
}

// Clone returns a copy of c that shares no memory with it.
func (c Collection) Clone() Collection {
	out := c
	if c.Items != nil {
		out.Items = make([]Item, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}

// CloneCollections deep-copies a collection set.
func CloneCollections(cs []Collection) []Collection {
	if cs == nil {
		return nil
	}
	out := make([]Collection, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

// Mode is the current interaction mode.
type Mode int

const (
	// Browsing allows selecting collections
	Browsing Mode = iota
	// Composing allows moving items between exactly three collections
	Composing
)

func (m Mode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case Composing:
		return "composing"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Role is the position of a collection while composing.
type Role int

const (
	RoleNone Role = iota
	RoleLeft
	RoleMiddle
	RoleRight
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleLeft:
		return "left"
	case RoleMiddle:
		return "middle"
	case RoleRight:
		return "right"
	default:
		return fmt.Sprintf("Role(%d)", r)
	}
}

// Direction selects a neighbour of a composing collection.
type Direction int

const (
	// Backward is towards the left collection
	Backward Direction = -1
	// Forward is towards the right collection
	Forward Direction = 1
)

// Directions returns the move directions a collection in role r may use.
func (r Role) Directions() []Direction {
	switch r {
	case RoleLeft:
		return []Direction{Forward}
	case RoleMiddle:
		return []Direction{Backward, Forward}
	case RoleRight:
		return []Direction{Backward}
	default:
		return nil
	}
}

// adjacent reports whether a and b are neighbouring compose roles.
func adjacent(a, b Role) bool {
	if a == RoleNone || b == RoleNone {
		return false
	}
	d := int(a) - int(b)
	return d == 1 || d == -1
}
