package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"
)

var header = []string{
	"First Name",
	"Last Name",
	"Email",
	"Food",
	"Side",
	"Drink",
	"Note",
	"Timestamp",
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ResponsesCSV serializes every response for a meal. Choice columns carry the
// catalog label when one is linked, otherwise the free-text override.
func (s *Service) ResponsesCSV(ctx context.Context, mealID uint) (*Export, error) {
	info, err := s.repo.MealInfo(ctx, mealID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.Entries(ctx, mealID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		record := []string{
			entry.FirstName,
			entry.LastName,
			entry.Email,
			resolve(entry.FoodLabel, entry.FoodOther),
			resolve(entry.SideLabel, entry.SideOther),
			resolve(entry.DrinkLabel, entry.DrinkOther),
			entry.Note,
			entry.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return &Export{
		Filename: fmt.Sprintf("%s %s.csv", info.Date.Format("2006-01-02"), info.MealTypeName),
		Data:     buf.Bytes(),
	}, nil
}

func resolve(label *string, other string) string {
	if label != nil {
		return *label
	}
	return other
}
