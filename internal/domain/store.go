package domain

import "time"

// Status de aprovação retornados pela plataforma.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// StoreRecord representa um lojista como devolvido pela plataforma.
type StoreRecord struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	OwnerName      string    `json:"owner_name"`
	OwnerEmail     string    `json:"owner_email"`
	Category       string    `json:"category"`
	CNPJ           string    `json:"cnpj"`
	City           string    `json:"city"`
	ApprovalStatus string    `json:"approval_status"`
	IsApproved     bool      `json:"is_approved"`
	IsActive       bool      `json:"is_active"`
	IsPrivileged   bool      `json:"is_privileged"`
	ProductsCount  int       `json:"products_count"`
	SuccessRate    float64   `json:"success_rate"`
	TotalOrders    int       `json:"total_orders"`
	CreatedAt      time.Time `json:"created_at"`
}

// CandidateStore é a visão reduzida usada na gestão de privilégios.
// O campo UserName carrega o nome do proprietário.
type CandidateStore struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	UserName      string  `json:"user_name"`
	Category      string  `json:"category"`
	ProductsCount int     `json:"products_count"`
	SuccessRate   float64 `json:"success_rate"`
	TotalOrders   int     `json:"total_orders"`
	IsPrivileged  bool    `json:"is_privileged"`
}
