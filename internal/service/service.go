package service

import (
	"context"

	"ecomonitor/internal/schema"
)

type Service struct {
	storage storage
}

func New(storage storage) *Service {
	return &Service{
		storage: storage,
	}
}

// Get returns readings for locations, duplicated ids are requested once
func (s *Service) Get(ctx context.Context, locations []schema.Location) ([]schema.Reading, error) {
	if len(locations) == 0 {
		return []schema.Reading{}, nil
	}

	locations = removeDuplicates(locations)

	return s.storage.Get(ctx, collectToMap(locations))
}

func collectToMap(locations []schema.Location) map[string]schema.Location {
	result := make(map[string]schema.Location, len(locations))

	for _, val := range locations {
		result[val.Id] = val
	}

	return result
}

// removeDuplicates keeps the first occurrence of every id
func removeDuplicates(locations []schema.Location) []schema.Location {
	seen := make(map[string]struct{}, len(locations))
	list := make([]schema.Location, 0, len(locations))
	for _, item := range locations {
		if _, ok := seen[item.Id]; ok {
			continue
		}
		seen[item.Id] = struct{}{}
		list = append(list, item)
	}
	return list
}
