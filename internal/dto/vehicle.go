package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateVehicleRequest struct {
	RegistrationNumber string          `json:"registrationNumber" binding:"required"`
	Type               string          `json:"type" binding:"required"`
	Capacity           decimal.Decimal `json:"capacity"`
	CapacityUnit       string          `json:"capacityUnit"`
	Model              string          `json:"model"`
	Year               int             `json:"year"`
	InsuranceNumber    string          `json:"insuranceNumber"`
	InsuranceExpiry    *time.Time      `json:"insuranceExpiry"`
	PermitNumber       string          `json:"permitNumber"`
	PermitExpiry       *time.Time      `json:"permitExpiry"`
	FitnessExpiry      *time.Time      `json:"fitnessExpiry"`
	Status             string          `json:"status" binding:"omitempty,oneof=available in_transit maintenance inactive"`
}

type UpdateVehicleRequest struct {
	RegistrationNumber *string          `json:"registrationNumber"`
	Type               *string          `json:"type"`
	Capacity           *decimal.Decimal `json:"capacity"`
	CapacityUnit       *string          `json:"capacityUnit"`
	Model              *string          `json:"model"`
	Year               *int             `json:"year"`
	InsuranceNumber    *string          `json:"insuranceNumber"`
	InsuranceExpiry    *time.Time       `json:"insuranceExpiry"`
	PermitNumber       *string          `json:"permitNumber"`
	PermitExpiry       *time.Time       `json:"permitExpiry"`
	FitnessExpiry      *time.Time       `json:"fitnessExpiry"`
	Status             *string          `json:"status" binding:"omitempty,oneof=available in_transit maintenance inactive"`
}
