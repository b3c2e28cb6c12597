package domain

import (
	"math"
	"time"
)

// BMICategory is the WHO adult weight class for a body-mass index.
type BMICategory string

const (
	BMIUnknown     BMICategory = "Unknown"
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// CategoryForBMI classifies bmi.
func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// HealthStatistics is derived from a user's profile on demand. History is
// filled by the caller, newest first.
type HealthStatistics struct {
	UserID   int64          `json:"userId"`
	Height   *float64       `json:"height,omitempty"`
	Weight   *float64       `json:"weight,omitempty"`
	BMI      *float64       `json:"bmi,omitempty"`
	Category BMICategory    `json:"bmiCategory"`
	History  []HealthRecord `json:"history"`
}

// HealthRecord is one height/weight measurement. BMI is computed by the
// database.
type HealthRecord struct {
	ID         int64     `json:"historyId"`
	UserID     int64     `json:"userId"`
	Weight     float64   `json:"weight"`
	Height     float64   `json:"height"`
	BMI        *float64  `json:"bmi,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// ComputeHealthStatistics returns BMI (kg/m², two decimals) and its category.
// Missing or non-positive height or weight yields BMIUnknown.
func ComputeHealthStatistics(u User) HealthStatistics {
	stats := HealthStatistics{UserID: u.ID, Height: u.Height, Weight: u.Weight, Category: BMIUnknown}
	if u.Height == nil || u.Weight == nil || *u.Height <= 0 || *u.Weight <= 0 {
		return stats
	}
	m := *u.Height / 100
	bmi := math.Round(*u.Weight/(m*m)*100) / 100
	stats.BMI = &bmi
	stats.Category = CategoryForBMI(bmi)
	return stats
}
