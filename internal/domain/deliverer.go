package domain

import "time"

// DelivererRecord representa um entregador como devolvido pela plataforma.
type DelivererRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserPhone       string    `json:"user_phone"`
	CPF             string    `json:"cpf"`
	VehicleType     string    `json:"vehicle_type"`
	VehiclePlate    string    `json:"vehicle_plate"`
	ApprovalStatus  string    `json:"approval_status"`
	IsApproved      bool      `json:"is_approved"`
	IsOnline        bool      `json:"is_online"`
	Rating          float64   `json:"rating"`
	TotalDeliveries int       `json:"total_deliveries"`
	CreatedAt       time.Time `json:"created_at"`
}
