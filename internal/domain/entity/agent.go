package entity

// Agent is a sales agent covering one or more brands.
type Agent struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     *string        `json:"phone"`
	Expertise *string        `json:"expertise"`
	Active    bool           `json:"active"`
	Brands    []BrandSummary `json:"brands"`
}

// BrandSummary is the part of a brand exposed alongside an agent.
type BrandSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
