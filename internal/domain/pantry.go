package domain

import (
	"math"
	"time"
)

// PantryItem is an ingredient a user has at home.
type PantryItem struct {
	ID             int64     `json:"itemId"`
	UserID         int64     `json:"userId"`
	IngredientName string    `json:"ingredientName"`
	Quantity       *float64  `json:"quantity,omitempty"`
	Unit           string    `json:"unit"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Ingredient carries reference nutrition per 100 g.
type Ingredient struct {
	ID              int64     `json:"ingredientId"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	CaloriesPer100g *float64  `json:"caloriesPer100g,omitempty"`
	ProteinPer100g  *float64  `json:"proteinPer100g,omitempty"`
	CarbsPer100g    *float64  `json:"carbsPer100g,omitempty"`
	FatPer100g      *float64  `json:"fatPer100g,omitempty"`
	FiberPer100g    *float64  `json:"fiberPer100g,omitempty"`
	Verified        bool      `json:"isVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

// IngredientNutrition is an ingredient's nutrition scaled to a portion.
// Unknown per-100 g values stay unknown.
type IngredientNutrition struct {
	Ingredient    string   `json:"ingredient"`
	AmountGrams   float64  `json:"amount_grams"`
	Calories      *float64 `json:"calories"`
	Protein       *float64 `json:"protein"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Fat           *float64 `json:"fat"`
	Fiber         *float64 `json:"fiber"`
}

// ScaleNutrition scales ing's per-100 g values to grams, rounded to two decimals.
func ScaleNutrition(ing Ingredient, grams float64) IngredientNutrition {
	ratio := grams / 100
	scale := func(v *float64) *float64 {
		if v == nil {
			return nil
		}
		out := math.Round(*v*ratio*100) / 100
		return &out
	}
	return IngredientNutrition{
		Ingredient:    ing.Name,
		AmountGrams:   grams,
		Calories:      scale(ing.CaloriesPer100g),
		Protein:       scale(ing.ProteinPer100g),
		Carbohydrates: scale(ing.CarbsPer100g),
		Fat:           scale(ing.FatPer100g),
		Fiber:         scale(ing.FiberPer100g),
	}
}
