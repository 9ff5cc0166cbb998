package domain

import "time"

// Status de disponibilidade reportados pelo serviço de geolocalização.
const (
	DelivererAvailable = "available"
	DelivererBusy      = "busy"
)

// GeoPoint é a última posição conhecida de um entregador.
type GeoPoint struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	LastUpdate time.Time `json:"last_update"`
	Speed      *float64  `json:"speed,omitempty"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
}

// CurrentOrder descreve o pedido em andamento, quando houver.
type CurrentOrder struct {
	OrderID         string `json:"order_id"`
	StoreName       string `json:"store_name"`
	ClientName      string `json:"client_name"`
	DeliveryAddress string `json:"delivery_address"`
}

// DelivererLocation é uma entrada do rastreamento ao vivo.
type DelivererLocation struct {
	DelivererID  string        `json:"deliverer_id"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	VehicleType  string        `json:"vehicle_type"`
	Status       string        `json:"status"`
	Location     GeoPoint      `json:"location"`
	CurrentOrder *CurrentOrder `json:"current_order,omitempty"`
}

// TrackingStatistics agrega os contadores do rastreamento.
type TrackingStatistics struct {
	TotalApproved int `json:"total_approved"`
	Online        int `json:"online"`
	Available     int `json:"available"`
	Busy          int `json:"busy"`
}

// TrackingSnapshot é o resultado completo de uma rodada de rastreamento.
// Cada rodada substitui o snapshot anterior por inteiro; não há diff
// incremental, para evitar entradas obsoletas acumuladas.
type TrackingSnapshot struct {
	Deliverers []DelivererLocation `json:"deliverers"`
	Statistics TrackingStatistics  `json:"statistics"`
	LastUpdate time.Time           `json:"last_update"`
}
