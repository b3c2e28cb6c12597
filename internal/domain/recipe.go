package domain

import (
	"encoding/json"
	"time"
)

// Recipe is a catalog entry. Nutrient values are per serving and optional; a
// recipe without calories or protein cannot be scored by the planner.
type Recipe struct {
	ID              int64           `json:"recipeId"`
	Title           string          `json:"title"`
	PrepTime        *int            `json:"cookTime,omitempty"`
	Cuisines        []string        `json:"cuisines"`
	Tags            []string        `json:"tags"`
	Ingredients     json.RawMessage `json:"ingredients,omitempty"`
	Calories        *float64        `json:"calories,omitempty"`
	Protein         *float64        `json:"protein,omitempty"`
	Carbs           *float64        `json:"carbohydrates,omitempty"`
	Fat             *float64        `json:"fat,omitempty"`
	Fiber           *float64        `json:"fiber,omitempty"`
	PopularityScore int             `json:"popularityScore"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Scorable reports whether both calories and protein are known.
func (r Recipe) Scorable() bool {
	return r.Calories != nil && r.Protein != nil
}

// Nutrients returns the five nutrient values with unknown ones as zero.
func (r Recipe) Nutrients() Nutrients {
	return Nutrients{
		Calories: valueOrZero(r.Calories),
		Protein:  valueOrZero(r.Protein),
		Carbs:    valueOrZero(r.Carbs),
		Fat:      valueOrZero(r.Fat),
		Fiber:    valueOrZero(r.Fiber),
	}
}

// Nutrients is a set of nutrient amounts (kcal and grams).
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the element-wise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fiber:    n.Fiber + o.Fiber,
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
