// file: internals/features/bookstore/catalog/model/book_model.go
package model

type BookModel struct {
	BookISBN            string  `gorm:"type:varchar(13);primaryKey;column:book_isbn" json:"book_isbn"`
	BookTitle           string  `gorm:"type:text;not null;column:book_title" json:"book_title"`
	BookPublisherID     int64   `gorm:"not null;column:book_publisher_id" json:"book_publisher_id"`
	BookPublicationYear *int16  `gorm:"type:smallint;column:book_publication_year" json:"book_publication_year,omitempty"`
	BookPrice           float64 `gorm:"type:numeric(10,2);not null;column:book_price" json:"book_price"`
	BookCategory        string  `gorm:"type:varchar(20);not null;column:book_category" json:"book_category"`

	// Stok hanya boleh berubah lewat checkout (turun), sell admin (turun),
	// dan konfirmasi order penerbit (naik). CHECK >= 0 di skema.
	BookQuantityInStock int `gorm:"not null;default:0;column:book_quantity_in_stock" json:"book_quantity_in_stock"`
	BookThreshold       int `gorm:"not null;default:10;column:book_threshold" json:"book_threshold"`
}

func (BookModel) TableName() string { return "books" }

// Kategori valid (enum di skema).
var ValidCategories = []string{"Science", "Art", "Religion", "History", "Geography"}

func IsValidCategory(cat string) bool {
	for _, v := range ValidCategories {
		if v == cat {
			return true
		}
	}
	return false
}
