// internals/features/bookstore/catalog/dto/book_dto.go
package dto

/* =========================
   REQUEST
   ========================= */

// Satu skema kanonik per operasi; varian nama field lama dari frontend
// tidak diterima lagi.
type BookCreateRequest struct {
	ISBN     string `json:"isbn"     validate:"required,len=13,numeric"`
	Title    string `json:"title"    validate:"required,min=1"`
	Category string `json:"category" validate:"required,oneof=Science Art Religion History Geography"`

	// Salah satu dari publisher_id / publisher_name wajib ada;
	// publisher_name baru akan dibuatkan barisnya.
	PublisherID   *int64  `json:"publisher_id,omitempty"   validate:"omitempty,gt=0"`
	PublisherName *string `json:"publisher_name,omitempty" validate:"omitempty,min=1,max=160"`

	PublicationYear *int16  `json:"publication_year,omitempty" validate:"omitempty,gte=1000,lte=2100"`
	Price           float64 `json:"price"                      validate:"required,gt=0"`

	InitialStock int `json:"initial_stock" validate:"gte=0"`
	Threshold    int `json:"threshold,omitempty" validate:"omitempty,gte=1"`

	Authors []string `json:"authors,omitempty" validate:"omitempty,dive,min=1,max=160"`
}

type BookSearchQuery struct {
	Q         *string `query:"q"`
	Title     *string `query:"title"`
	Category  *string `query:"category"`
	Author    *string `query:"author"`
	Publisher *string `query:"publisher"`
}

/* =========================
   RESPONSE
   ========================= */

type BookResponse struct {
	ISBN            string   `json:"isbn"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	PublicationYear *int16   `json:"publication_year,omitempty"`
	Price           float64  `json:"price"`
	QuantityInStock int      `json:"quantity_in_stock"`
	Threshold       int      `json:"threshold,omitempty"`
	PublisherName   string   `json:"publisher_name"`
	Authors         []string `json:"authors"`
	Availability    string   `json:"availability"` // Available | Out of Stock
}
