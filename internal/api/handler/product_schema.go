package handler

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Category    string  `json:"category"    validate:"required"`
	Image       string  `json:"image"       validate:"required"`
	InStock     *bool   `json:"in_stock"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
}

// updateProductRequest carries a partial update: every field is independently
// optional and only present fields are applied.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"    validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	InStock     *bool    `json:"in_stock"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
}

type listProductsQuery struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Category string `query:"category"`
	Search   string `query:"search"`
}
