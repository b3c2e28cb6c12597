package domain

import "time"

// Sex enumerates the biological sex values accepted on a profile.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
	SexOther  Sex = "OTHER"
)

// Valid reports whether s is empty or one of the known values.
func (s Sex) Valid() bool {
	switch s {
	case "", SexMale, SexFemale, SexOther:
		return true
	}
	return false
}

// CookingSkillLevel enumerates self-reported cooking skill.
type CookingSkillLevel string

const (
	SkillBeginner     CookingSkillLevel = "BEGINNER"
	SkillIntermediate CookingSkillLevel = "INTERMEDIATE"
	SkillAdvanced     CookingSkillLevel = "ADVANCED"
)

// Valid reports whether l is empty or one of the known values.
func (l CookingSkillLevel) Valid() bool {
	switch l {
	case "", SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// User is a person whose meals are planned. Height is in centimetres and
// weight in kilograms.
type User struct {
	ID                int64             `json:"userId"`
	Name              string            `json:"name"`
	Height            *float64          `json:"height,omitempty"`
	Weight            *float64          `json:"weight,omitempty"`
	Age               *int              `json:"age,omitempty"`
	Sex               Sex               `json:"sex,omitempty"`
	Allergies         []string          `json:"allergies"`
	Dislikes          []string          `json:"dislikes"`
	CookingSkillLevel CookingSkillLevel `json:"cookingSkillLevel,omitempty"`
	Equipments        []string          `json:"equipments"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// UserTarget holds a user's stored daily nutrient goals. Every field is
// optional; missing ones fall back to engine defaults.
type UserTarget struct {
	UserID    int64     `json:"userId"`
	Calories  *float64  `json:"calories,omitempty"`
	Protein   *float64  `json:"protein,omitempty"`
	Carbs     *float64  `json:"carbs,omitempty"`
	Fat       *float64  `json:"fat,omitempty"`
	Fiber     *float64  `json:"fiber,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Merge copies every non-nil field of patch onto t.
func (t *UserTarget) Merge(patch UserTarget) {
	if patch.Calories != nil {
		t.Calories = patch.Calories
	}
	if patch.Protein != nil {
		t.Protein = patch.Protein
	}
	if patch.Carbs != nil {
		t.Carbs = patch.Carbs
	}
	if patch.Fat != nil {
		t.Fat = patch.Fat
	}
	if patch.Fiber != nil {
		t.Fiber = patch.Fiber
	}
}
