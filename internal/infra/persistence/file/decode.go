package file

import (
	"encoding/json"
	"strings"

	"brandhub/internal/domain/entity"
	"brandhub/internal/infra/persistence/mapper"
	"brandhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// brandRecord is one element of the brands document. Coordinates may be
// given flat (lat, lng, address) or nested under location; flat fields win.
type brandRecord struct {
	model.BrandModel
	Location *struct {
		Lat     *float64 `json:"lat"`
		Lng     *float64 `json:"lng"`
		Address *string  `json:"address"`
	} `json:"location,omitempty"`
}

// agentRecord is one element of the agents document.
type agentRecord struct {
	model.AgentModel
	BrandIDs []string `json:"brandIds"`
}

// decodeBrandModels parses the brands document into flat records.
// Records without an id or name are dropped and counted in skipped.
func decodeBrandModels(data []byte) (records []*model.BrandModel, skipped int, err error) {
	var raw []brandRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, errors.Wrap(err, "failed to parse brands document")
	}

	records = make([]*model.BrandModel, 0, len(raw))
	for i := range raw {
		record := raw[i].flatten()
		if strings.TrimSpace(record.ID) == "" || strings.TrimSpace(record.Name) == "" {
			skipped++

			continue
		}
		records = append(records, record)
	}

	return records, skipped, nil
}

func (r *brandRecord) flatten() *model.BrandModel {
	record := r.BrandModel
	if r.Location != nil {
		if record.Lat == nil {
			record.Lat = r.Location.Lat
		}
		if record.Lng == nil {
			record.Lng = r.Location.Lng
		}
		if record.Address == nil {
			record.Address = r.Location.Address
		}
	}

	return &record
}

// DecodeBrands parses a brands document and returns the brands sorted by name.
func DecodeBrands(data []byte) ([]*entity.Brand, error) {
	records, _, err := decodeBrandModels(data)
	if err != nil {
		return nil, err
	}

	brands := mapper.ToBrands(records)
	mapper.SortBrands(brands)

	return brands, nil
}

// decodeAgents parses the agents document and resolves each agent's brand ids
// against the loaded brand records. Unknown brand ids are ignored.
func decodeAgents(data []byte, brandRecords []*model.BrandModel) ([]*entity.Agent, error) {
	var raw []agentRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse agents document")
	}

	byID := make(map[string]*model.BrandModel, len(brandRecords))
	for _, record := range brandRecords {
		byID[record.ID] = record
	}

	agentModels := make([]*model.AgentModel, 0, len(raw))
	for i := range raw {
		agentM := raw[i].AgentModel
		if strings.TrimSpace(agentM.ID) == "" || strings.TrimSpace(agentM.Name) == "" {
			continue
		}

		seen := make(map[string]struct{}, len(raw[i].BrandIDs))
		for _, brandID := range raw[i].BrandIDs {
			brandM, ok := byID[brandID]
			if !ok {
				continue
			}
			if _, dup := seen[brandID]; dup {
				continue
			}
			seen[brandID] = struct{}{}

			agentM.AgentBrands = append(agentM.AgentBrands, model.AgentBrandModel{
				AgentID: agentM.ID,
				BrandID: brandID,
				Brand:   brandM,
			})
		}
		agentModels = append(agentModels, &agentM)
	}

	agents := mapper.ToAgents(agentModels)
	mapper.SortAgents(agents)

	return agents, nil
}
