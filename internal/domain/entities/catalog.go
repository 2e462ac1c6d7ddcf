package entities

import "strings"

// CatalogProduct is a product of the general catalog. Price comes from the API as a
// decimal string ("159.99").
type CatalogProduct struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       string `json:"price"`
}

// Matches reports whether term (already lower-cased and trimmed) is a substring of the
// reference or the description.
func (p CatalogProduct) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Reference), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

// CableOrAccessory is an item of the cables/accessories catalog.
type CableOrAccessory struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	MeasurementType string `json:"measurement_type"`
	Price           string `json:"price"`
}

func (c CableOrAccessory) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Description), term) ||
		strings.Contains(strings.ToLower(c.MeasurementType), term)
}

// NormalizeSearchTerm prepares user input for Matches.
func NormalizeSearchTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
