package domain

// AdminSummary agrega os contadores e totais monetários exibidos no dashboard.
// Os contadores de lojas/entregadores são sempre derivados das listas em
// memória; do resumo vindo do servidor só são aproveitados receita e pedidos.
type AdminSummary struct {
	TotalStores      int     `json:"total_stores"`
	ActiveStores     int     `json:"active_stores"`
	PendingStores    int     `json:"pending_stores"`
	TotalDeliverers  int     `json:"total_deliverers"`
	ActiveDeliverers int     `json:"active_deliverers"`
	TotalRevenue     float64 `json:"total_revenue"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	TotalOrders      int     `json:"total_orders"`
	MonthlyOrders    int     `json:"monthly_orders"`
}
