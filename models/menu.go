package models

import (
	"errors"
	"sort"
)

// MenuItem is a single orderable item. The catalog is fixed at deploy time.
type MenuItem struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

var ErrItemNotFound = errors.New("menu item not found")

var menu = map[string]MenuItem{
	"01": {Code: "01", Name: "Chicken Fried Rice", Price: 80},
	"02": {Code: "02", Name: "Veg Fried Rice", Price: 70},
	"03": {Code: "03", Name: "Chicken Noodles", Price: 90},
	"04": {Code: "04", Name: "Veg Noodles", Price: 75},
}

// LookupItem resolves a 2-digit item code to its menu entry.
func LookupItem(code string) (MenuItem, error) {
	item, ok := menu[code]
	if !ok {
		return MenuItem{}, ErrItemNotFound
	}
	return item, nil
}

// ItemCodeByName is the reverse lookup used when the caller selects by
// display name. Names are unique in the catalog.
func ItemCodeByName(name string) (string, error) {
	for code, item := range menu {
		if item.Name == name {
			return code, nil
		}
	}
	return "", ErrItemNotFound
}

// MenuItems returns the catalog ordered by item code.
func MenuItems() []MenuItem {
	items := make([]MenuItem, 0, len(menu))
	for _, item := range menu {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items
}
