package domain

// City é uma cidade onde a plataforma opera.
type City struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	State             string  `json:"state"`
	DeliveryFeePerKm  float64 `json:"delivery_fee_per_km"`
	MinimumOrderValue float64 `json:"minimum_order_value"`
}

// Category é uma categoria de produtos das lojas.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	SortOrder   int    `json:"sort_order"`
}
