package lists

import (
	"fmt"

	"github.com/listcraft/listcraft/internal/listapi"
)

// CollectionName returns the display name for list number n.
func CollectionName(n int) string {
	return fmt.Sprintf("List %d", n)
}

// BuildCollections groups fetched records by list number.
//
// Records without a list number are dropped. Collections appear in the order
// their list number is first seen while walking the groups in document order,
// and items keep their relative order.
func BuildCollections(resp *listapi.Response) []Collection {
	collections := make([]Collection, 0)
	index := make(map[int]int)

	for _, raw := range resp.Items() {
		if raw.ListNumber == nil {
			continue
		}
		n := *raw.ListNumber

		i, ok := index[n]
		if !ok {
			i = len(collections)
			index[n] = i
			collections = append(collections, Collection{
				ID:    n,
				Name:  CollectionName(n),
				Items: make([]Item, 0),
			})
		}

		collections[i].Items = append(collections[i].Items, Item{
			ID:             raw.ID,
			Name:           raw.Name,
			ScientificName: raw.ScientificName,
			GroupNumber:    n,
		})
	}

	return collections
}

// nextCollectionName picks "List <n>" for a new collection, starting from one
// past the current count and skipping names already in use.
func nextCollectionName(existing []Collection) string {
	taken := make(map[string]bool, len(existing))
	for _, c := range existing {
		taken[c.Name] = true
	}
	n := len(existing) + 1
	for taken[CollectionName(n)] {
		n++
	}
	return CollectionName(n)
}
