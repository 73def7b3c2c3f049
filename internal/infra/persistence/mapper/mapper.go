// Package mapper converts persistence records into the shapes exposed by the API.
// Every function here is pure: records are never mutated.
package mapper

import (
	"cmp"
	"slices"

	"brandhub/internal/domain/entity"
	"brandhub/internal/infra/persistence/model"

	"github.com/paulmach/orb"
)

// worldBound is the valid range of decimal-degree coordinates.
var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// ToBrand nests the flat lat/lng/address columns under Location.
// A record missing any of the three, or with coordinates outside the world
// bounds, yields a brand without location.
func ToBrand(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		Founded:      data.Founded,
		Headquarters: data.Headquarters,
		Location:     toLocation(data.Lat, data.Lng, data.Address),
		Image:        data.Image,
	}
}

// ToBrands maps a slice of records, skipping nil entries.
func ToBrands(data []*model.BrandModel) []*entity.Brand {
	brands := make([]*entity.Brand, 0, len(data))
	for _, brandM := range data {
		if brand := ToBrand(brandM); brand != nil {
			brands = append(brands, brand)
		}
	}

	return brands
}

// FromBrand flattens a brand back into its record form.
func FromBrand(data *entity.Brand) *model.BrandModel {
	if data == nil {
		return nil
	}

	brandM := &model.BrandModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		Founded:      data.Founded,
		Headquarters: data.Headquarters,
		Image:        data.Image,
	}

	if data.Location != nil {
		lat, lng, address := data.Location.Lat, data.Location.Lng, data.Location.Address
		brandM.Lat = &lat
		brandM.Lng = &lng
		brandM.Address = &address
	}

	return brandM
}

// ToAgent flattens the agent's join rows into brand summaries ordered by name.
// Join ids and foreign keys are dropped; rows without a loaded brand are skipped.
func ToAgent(data *model.AgentModel) *entity.Agent {
	if data == nil {
		return nil
	}

	summaries := make([]entity.BrandSummary, 0, len(data.AgentBrands))
	for _, agentBrand := range data.AgentBrands {
		if agentBrand.Brand == nil {
			continue
		}

		summaries = append(summaries, ToBrandSummary(agentBrand.Brand))
	}
	SortSummaries(summaries)

	return &entity.Agent{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     cloneString(data.Phone),
		Expertise: cloneString(data.Expertise),
		Active:    data.Active,
		Brands:    summaries,
	}
}

// ToAgents maps a slice of records, skipping nil entries.
func ToAgents(data []*model.AgentModel) []*entity.Agent {
	agents := make([]*entity.Agent, 0, len(data))
	for _, agentM := range data {
		if agent := ToAgent(agentM); agent != nil {
			agents = append(agents, agent)
		}
	}

	return agents
}

// ToBrandSummary keeps only id, name and category.
func ToBrandSummary(data *model.BrandModel) entity.BrandSummary {
	return entity.BrandSummary{
		ID:       data.ID,
		Name:     data.Name,
		Category: data.Category,
	}
}

// SortBrands orders brands by name, then id, in place.
func SortBrands(brands []*entity.Brand) {
	slices.SortStableFunc(brands, func(a, b *entity.Brand) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
}

// SortAgents orders agents by name, then id, in place.
func SortAgents(agents []*entity.Agent) {
	slices.SortStableFunc(agents, func(a, b *entity.Agent) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
}

// SortSummaries orders brand summaries by name, then id, in place.
func SortSummaries(summaries []entity.BrandSummary) {
	slices.SortStableFunc(summaries, func(a, b entity.BrandSummary) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
}

func toLocation(lat, lng *float64, address *string) *entity.Location {
	if lat == nil || lng == nil || address == nil {
		return nil
	}
	if !worldBound.Contains(orb.Point{*lng, *lat}) {
		return nil
	}

	return &entity.Location{
		Lat:     *lat,
		Lng:     *lng,
		Address: *address,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
