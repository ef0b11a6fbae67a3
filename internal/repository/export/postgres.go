package export

import (
	"context"
	"errors"
	"time"

	exportdomain "mealpoll-go/internal/domain/export"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) MealInfo(ctx context.Context, mealID uint) (*exportdomain.MealInfo, error) {
	type infoRow struct {
		Date         time.Time `gorm:"column:date"`
		MealTypeName *string   `gorm:"column:meal_type_name"`
	}

	var row infoRow
	err := r.db.WithContext(ctx).
		Table("meals").
		Select("meals.date, meal_types.name as meal_type_name").
		Joins("left join meal_types on meal_types.id = meals.meal_type_id").
		Where("meals.id = ?", mealID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, exportdomain.ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}

	info := exportdomain.MealInfo{Date: row.Date}
	if row.MealTypeName != nil {
		info.MealTypeName = *row.MealTypeName
	}
	return &info, nil
}

func (r *PostgresRepository) Entries(ctx context.Context, mealID uint) ([]exportdomain.Entry, error) {
	type entryRow struct {
		FirstName  string    `gorm:"column:first_name"`
		LastName   string    `gorm:"column:last_name"`
		Email      string    `gorm:"column:email"`
		FoodLabel  *string   `gorm:"column:food_label"`
		SideLabel  *string   `gorm:"column:side_label"`
		DrinkLabel *string   `gorm:"column:drink_label"`
		FoodOther  string    `gorm:"column:food_other"`
		SideOther  string    `gorm:"column:side_other"`
		DrinkOther string    `gorm:"column:drink_other"`
		Note       string    `gorm:"column:note"`
		CreatedAt  time.Time `gorm:"column:created_at"`
	}

	var rows []entryRow
	if err := r.db.WithContext(ctx).
		Table("responses").
		Select(`responses.first_name, responses.last_name, responses.email,
			foods.label as food_label, sides.label as side_label, drinks.label as drink_label,
			responses.food_other, responses.side_other, responses.drink_other,
			responses.note, responses.created_at`).
		Joins("left join foods on foods.id = responses.food_id").
		Joins("left join sides on sides.id = responses.side_id").
		Joins("left join drinks on drinks.id = responses.drink_id").
		Where("responses.meal_id = ?", mealID).
		Order("responses.created_at asc, responses.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]exportdomain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, exportdomain.Entry{
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Email:      row.Email,
			FoodLabel:  row.FoodLabel,
			SideLabel:  row.SideLabel,
			DrinkLabel: row.DrinkLabel,
			FoodOther:  row.FoodOther,
			SideOther:  row.SideOther,
			DrinkOther: row.DrinkOther,
			Note:       row.Note,
			CreatedAt:  row.CreatedAt,
		})
	}
	return entries, nil
}
