package domain

import (
	"time"

	"github.com/wendyapp/admin-console-api/internal/domain"
)

// Envelopes de resposta da plataforma. Os nomes de campo seguem exatamente o
// contrato do backend; cada coleção chega embrulhada em uma chave própria.

type DashboardSummary struct {
	Stores struct {
		Total   int `json:"total"`
		Active  int `json:"active"`
		Pending int `json:"pending"`
	} `json:"stores"`
	Deliverers struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"deliverers"`
	Revenue struct {
		Total   float64 `json:"total"`
		Monthly float64 `json:"monthly"`
	} `json:"revenue"`
	Orders struct {
		Total   int `json:"total"`
		Monthly int `json:"monthly"`
	} `json:"orders"`
}

type StoresResponse struct {
	Stores []domain.StoreRecord `json:"stores"`
}

type DeliverersResponse struct {
	Deliverers []domain.DelivererRecord `json:"deliverers"`
}

type CitiesResponse struct {
	Cities []domain.City `json:"cities"`
}

type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

type TrackingResponse struct {
	Deliverers []domain.DelivererLocation `json:"deliverers"`
	Statistics domain.TrackingStatistics  `json:"statistics"`
	LastUpdate time.Time                  `json:"last_update"`
}

type CandidatesResponse struct {
	CandidateStores []domain.CandidateStore `json:"candidate_stores"`
}

type PrivilegedResponse struct {
	PrivilegedStores []domain.CandidateStore `json:"privileged_stores"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// BatchPrivilegeResult é o resumo devolvido pela ação em lote de privilégios.
type BatchPrivilegeResult struct {
	TotalProcessed int `json:"total_processed"`
	TotalErrors    int `json:"total_errors"`
}

// Corpos de requisição das mutações.

type ReasonRequest struct {
	Reason string `json:"reason"`
}

type PrivilegeRequest struct {
	IsPrivileged bool   `json:"is_privileged"`
	Reason       string `json:"reason"`
}

type BatchPrivilegeRequest struct {
	StoreIDs []string `json:"store_ids"`
	Action   string   `json:"action"`
	Reason   string   `json:"reason"`
}
