// file: internals/features/bookstore/reports/dto/report_dto.go
package dto

type SalesSummaryResponse struct {
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	SaleCount   int     `json:"sale_count"`
	TotalAmount float64 `json:"total_amount"`
}

type SaleByDateResponse struct {
	SaleID     string  `json:"sale_id"`
	UserName   string  `json:"user_name"`
	TotalPrice float64 `json:"total_price"`
	SaleDate   string  `json:"sale_date"`
}

type TopCustomerResponse struct {
	UserID     string  `json:"user_id"`
	UserName   string  `json:"user_name"`
	Email      string  `json:"email"`
	SaleCount  int     `json:"sale_count"`
	TotalSpent float64 `json:"total_spent"`
}

type TopBookResponse struct {
	ISBN         string  `json:"isbn"`
	Title        string  `json:"title"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}
