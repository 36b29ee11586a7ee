package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCatalogItem = errors.New("unknown catalog item")
	ErrEmptyCatalog       = errors.New("catalog has no items")
)

// CatalogItem is one purchasable drink. UnitPrice is whole Rupiah; the shop
// does not sell in fractional currency.

type CatalogItem struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	UnitPrice   int64  `json:"unit_price"`
}

// Catalog is the fixed drink list, injected at startup and never mutated at
// runtime. Item order is meaningful: decoded selections follow it.
type Catalog struct {
	items []CatalogItem
}

func NewCatalog(items ...CatalogItem) Catalog {
	return Catalog{items: items}
}

// DefaultCatalog returns the active Phicoffee menu.
func DefaultCatalog() Catalog {
	return NewCatalog(
		CatalogItem{Key: "phista coffee", DisplayName: "Phista Coffee", UnitPrice: 20000},
		CatalogItem{Key: "Phicoffee Caramel Macchiato", DisplayName: "Phicoffee Caramel Macchiato", UnitPrice: 20000},
		CatalogItem{Key: "Phicoffee Brown Sugar", DisplayName: "Phicoffee Brown Sugar", UnitPrice: 18000},
	)
}

func (c Catalog) Items() []CatalogItem {
	return c.items
}

func (c Catalog) Lookup(key string) (CatalogItem, bool) {
	for _, it := range c.items {
		if strings.EqualFold(it.Key, key) {
			return it, true
		}
	}
	return CatalogItem{}, false
}

func (c Catalog) Validate() error {
	if len(c.items) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(c.items))
	for _, it := range c.items {
		key := strings.ToLower(it.Key)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate catalog key %q", it.Key)
		}
		seen[key] = struct{}{}
		if it.UnitPrice <= 0 {
			return fmt.Errorf("catalog item %q has non-positive unit price %d", it.Key, it.UnitPrice)
		}
	}
	return nil
}

// LineTotal is the price for one selection of the given item. Pure.
func LineTotal(item CatalogItem, sel CoffeeSelection) int64 {
	return item.UnitPrice * int64(sel.Quantity())
}

// OrderTotal recomputes the order total from the catalog. A selection whose
// key does not resolve is a data error, never silently skipped.
func OrderTotal(catalog Catalog, selections []CoffeeSelection) (int64, error) {
	var total int64
	for _, sel := range selections {
		item, ok := catalog.Lookup(sel.CatalogKey)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCatalogItem, sel.CatalogKey)
		}
		total += LineTotal(item, sel)
	}
	return total, nil
}
