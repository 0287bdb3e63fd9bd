package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Barista/pkg/model"
)

var ErrDrinkNotFound = errors.New("drink not found")

type DrinkRepository interface {
	GetDrinks(ctx context.Context) ([]*model.Drink, error)
	GetDrinkByID(ctx context.Context, drinkID uint) (*model.Drink, error)
	AddDrink(ctx context.Context, drink model.Drink) (*model.Drink, error)
	UpdateDrink(ctx context.Context, drink *model.Drink) (*model.Drink, error)
	DeleteDrink(ctx context.Context, drinkID uint) error
}

func (r *Repository) GetDrinks(ctx context.Context) ([]*model.Drink, error) {
	var drinks []*model.Drink

	if result := r.DB.WithContext(ctx).Order("id").Find(&drinks); result.Error != nil {
		r.Logger.Error("error listing drinks", zap.Error(result.Error))

		return nil, result.Error
	}

	return drinks, nil
}

func (r *Repository) GetDrinkByID(ctx context.Context, drinkID uint) (*model.Drink, error) {
	var drink model.Drink

	result := r.DB.WithContext(ctx).First(&drink, drinkID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDrinkNotFound
		}

		return nil, result.Error
	}

	return &drink, nil
}

func (r *Repository) AddDrink(ctx context.Context, drink model.Drink) (*model.Drink, error) {
	if result := r.DB.WithContext(ctx).Create(&drink); result.Error != nil {
		r.Logger.Error("error adding drink", zap.String("title", drink.Title), zap.Error(result.Error))

		return nil, result.Error
	}

	return &drink, nil
}

// UpdateDrink writes the title and recipe of an existing drink.
func (r *Repository) UpdateDrink(ctx context.Context, drink *model.Drink) (*model.Drink, error) {
	result := r.DB.WithContext(ctx).Model(drink).Select("title", "recipe").Updates(drink)
	if result.Error != nil {
		r.Logger.Error("error updating drink", zap.Uint("drink_id", drink.ID), zap.Error(result.Error))

		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrDrinkNotFound
	}

	return drink, nil
}

func (r *Repository) DeleteDrink(ctx context.Context, drinkID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Drink{}, drinkID)
	if result.Error != nil {
		r.Logger.Error("error deleting drink", zap.Uint("drink_id", drinkID), zap.Error(result.Error))

		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDrinkNotFound
	}

	return nil
}

// Migrate creates or updates the drinks table. With reset the table is dropped
// first and seeded with a single drink.
func (r *Repository) Migrate(ctx context.Context, reset bool) error {
	db := r.DB.WithContext(ctx)

	if reset {
		if err := db.Migrator().DropTable(&model.Drink{}); err != nil {
			return err
		}
	}

	if err := db.AutoMigrate(&model.Drink{}); err != nil {
		return err
	}

	if !reset {
		return nil
	}

	_, err := r.AddDrink(ctx, SeedDrink())

	return err
}

func SeedDrink() model.Drink {
	return model.Drink{
		Title:  "water",
		Recipe: model.Recipe{{Color: "blue", Name: "water", Parts: 1}},
	}
}
