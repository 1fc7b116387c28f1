package model

type PublisherModel struct {
	PublisherID        int64   `gorm:"primaryKey;autoIncrement;column:publisher_id" json:"publisher_id"`
	PublisherName      string  `gorm:"type:varchar(160);not null;unique;column:publisher_name" json:"publisher_name"`
	PublisherAddress   *string `gorm:"type:text;column:publisher_address" json:"publisher_address,omitempty"`
	PublisherTelephone *string `gorm:"type:varchar(30);column:publisher_telephone" json:"publisher_telephone,omitempty"`
}

func (PublisherModel) TableName() string { return "publishers" }

type AuthorModel struct {
	AuthorID   int64  `gorm:"primaryKey;autoIncrement;column:author_id" json:"author_id"`
	AuthorName string `gorm:"type:varchar(160);not null;unique;column:author_name" json:"author_name"`
}

func (AuthorModel) TableName() string { return "authors" }

// Relasi many-to-many Book ↔ Author.
type BookAuthorModel struct {
	BookISBN string `gorm:"type:varchar(13);primaryKey;column:book_isbn" json:"book_isbn"`
	AuthorID int64  `gorm:"primaryKey;column:author_id" json:"author_id"`
}

func (BookAuthorModel) TableName() string { return "book_authors" }
