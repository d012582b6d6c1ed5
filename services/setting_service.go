package services

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
)

type SettingService struct {
	Repo *repository.SettingRepository
}

func NewSettingService(repo *repository.SettingRepository) *SettingService {
	return &SettingService{Repo: repo}
}

// GetAll returns settings as a key→value map, the shape both UIs consume.
func (s *SettingService) GetAll() (map[string]string, error) {
	rows, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// UpsertBatch writes a whole settings map in one go.
func (s *SettingService) UpsertBatch(values map[string]string) error {
	rows := make([]entity.Setting, 0, len(values))
	for k, v := range values {
		if k == "" {
			continue
		}
		rows = append(rows, entity.Setting{Key: k, Value: v})
	}
	return s.Repo.UpsertBatch(rows)
}
