package export

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeExportRepo struct {
	info    map[uint]*MealInfo
	entries map[uint][]Entry
}

func (r *fakeExportRepo) MealInfo(ctx context.Context, mealID uint) (*MealInfo, error) {
	info, ok := r.info[mealID]
	if !ok {
		return nil, ErrMealNotFound
	}
	return info, nil
}

func (r *fakeExportRepo) Entries(ctx context.Context, mealID uint) ([]Entry, error) {
	return r.entries[mealID], nil
}

func strPtr(s string) *string { return &s }

func TestResponsesCSV(t *testing.T) {
	submitted := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	repo := &fakeExportRepo{
		info: map[uint]*MealInfo{
			1: {Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), MealTypeName: "Dinner"},
		},
		entries: map[uint][]Entry{
			1: {
				{
					FirstName: "Ada",
					LastName:  "Lovelace",
					Email:     "ada@example.com",
					FoodLabel: strPtr("Hamburger"),
					SideLabel: strPtr("Fries"),
					DrinkOther: "Kombucha",
					Note:      "no onions",
					CreatedAt: submitted,
				},
				{
					FirstName: "Grace",
					LastName:  "Hopper",
					Email:     "grace@example.com",
					FoodOther: "Filet Mignon",
					DrinkLabel: strPtr("Coffee"),
					CreatedAt: submitted.Add(time.Minute),
				},
			},
		},
	}
	svc := NewService(repo)

	result, err := svc.ResponsesCSV(context.Background(), 1)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.Filename != "2026-03-14 Dinner.csv" {
		t.Fatalf("unexpected filename %q", result.Filename)
	}

	records, err := csv.NewReader(strings.NewReader(string(result.Data))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}

	wantHeader := []string{"First Name", "Last Name", "Email", "Food", "Side", "Drink", "Note", "Timestamp"}
	for i, want := range wantHeader {
		if records[0][i] != want {
			t.Fatalf("header column %d: got %q, want %q", i, records[0][i], want)
		}
	}

	first := records[1]
	if first[3] != "Hamburger" || first[4] != "Fries" || first[5] != "Kombucha" {
		t.Fatalf("unexpected first row choices: %v", first)
	}
	if first[7] != "2026-03-14T18:30:00Z" {
		t.Fatalf("unexpected timestamp %q", first[7])
	}

	second := records[2]
	if second[3] != "Filet Mignon" {
		t.Fatalf("expected free-text food, got %q", second[3])
	}
	if second[4] != "" {
		t.Fatalf("expected empty side column, got %q", second[4])
	}
	if second[5] != "Coffee" {
		t.Fatalf("expected catalog drink label, got %q", second[5])
	}
}

func TestResponsesCSVEmptyMeal(t *testing.T) {
	repo := &fakeExportRepo{
		info: map[uint]*MealInfo{
			2: {Date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), MealTypeName: "Lunch"},
		},
		entries: map[uint][]Entry{},
	}
	svc := NewService(repo)

	result, err := svc.ResponsesCSV(context.Background(), 2)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.Filename != "2026-01-02 Lunch.csv" {
		t.Fatalf("unexpected filename %q", result.Filename)
	}
	lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}

func TestResponsesCSVUnknownMeal(t *testing.T) {
	svc := NewService(&fakeExportRepo{info: map[uint]*MealInfo{}})
	if _, err := svc.ResponsesCSV(context.Background(), 9); !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}
