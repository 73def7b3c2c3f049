// Package entity contains the core business objects of the project.
package entity

// Brand is a luxury brand listed in the directory.
type Brand struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Founded      int       `json:"founded"`
	Headquarters string    `json:"headquarters"`
	Location     *Location `json:"location"` // nil when the brand has no complete coordinates
	Image        string    `json:"image"`
}

// Location is where a brand can be visited.
type Location struct {
	Lat     float64 `json:"lat"`     // decimal degrees
	Lng     float64 `json:"lng"`     // decimal degrees
	Address string  `json:"address"` // human-readable
}

// HasLocation reports whether the brand can be shown on a map.
func (b *Brand) HasLocation() bool {
	return b != nil && b.Location != nil
}

// Summary reduces the brand to the fields embedded in an agent.
func (b *Brand) Summary() BrandSummary {
	return BrandSummary{
		ID:       b.ID,
		Name:     b.Name,
		Category: b.Category,
	}
}
