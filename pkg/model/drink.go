package model

// Ingredient is one component of a drink recipe.
type Ingredient struct {
	Color string  `json:"color"`
	Name  string  `json:"name"`
	Parts float64 `json:"parts"`
}

type Recipe []Ingredient

// Drink is stored with its recipe serialized as a JSON string.
type Drink struct {
	ID     uint   `gorm:"primaryKey"`
	Title  string `gorm:"size:80;uniqueIndex;not null"`
	Recipe Recipe `gorm:"type:text;not null;serializer:json"`
}

// ShortIngredient hides the ingredient name from public listings.
type ShortIngredient struct {
	Color string  `json:"color"`
	Parts float64 `json:"parts"`
}

type ShortDrink struct {
	ID     uint              `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortIngredient `json:"recipe"`
}

type LongDrink struct {
	ID     uint         `json:"id"`
	Title  string       `json:"title"`
	Recipe []Ingredient `json:"recipe"`
}

func (d *Drink) Short() ShortDrink {
	recipe := make([]ShortIngredient, 0, len(d.Recipe))
	for _, ingredient := range d.Recipe {
		recipe = append(recipe, ShortIngredient{Color: ingredient.Color, Parts: ingredient.Parts})
	}

	return ShortDrink{ID: d.ID, Title: d.Title, Recipe: recipe}
}

func (d *Drink) Long() LongDrink {
	recipe := make([]Ingredient, len(d.Recipe))
	copy(recipe, d.Recipe)

	return LongDrink{ID: d.ID, Title: d.Title, Recipe: recipe}
}

func ShortDrinks(drinks []*Drink) []ShortDrink {
	result := make([]ShortDrink, 0, len(drinks))
	for _, drink := range drinks {
		result = append(result, drink.Short())
	}

	return result
}

func LongDrinks(drinks []*Drink) []LongDrink {
	result := make([]LongDrink, 0, len(drinks))
	for _, drink := range drinks {
		result = append(result, drink.Long())
	}

	return result
}
