package dto

import "time"

type CreateDriverRequest struct {
	Name             string     `json:"name" binding:"required"`
	Phone            string     `json:"phone" binding:"required"`
	Email            string     `json:"email" binding:"omitempty,email"`
	LicenseNumber    string     `json:"licenseNumber" binding:"required"`
	LicenseExpiry    *time.Time `json:"licenseExpiry"`
	Address          string     `json:"address"`
	EmergencyContact string     `json:"emergencyContact"`
	Status           string     `json:"status" binding:"omitempty,oneof=available on_trip inactive"`
}

type UpdateDriverRequest struct {
	Name             *string    `json:"name"`
	Phone            *string    `json:"phone"`
	Email            *string    `json:"email" binding:"omitempty,email"`
	LicenseNumber    *string    `json:"licenseNumber"`
	LicenseExpiry    *time.Time `json:"licenseExpiry"`
	Address          *string    `json:"address"`
	EmergencyContact *string    `json:"emergencyContact"`
	Status           *string    `json:"status" binding:"omitempty,oneof=available on_trip inactive"`
}
