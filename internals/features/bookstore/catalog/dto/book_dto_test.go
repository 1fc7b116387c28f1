package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "bookstore_backend/internals/helpers"
)

func validCreateRequest() BookCreateRequest {
	name := "Pustaka Ilmu"
	return BookCreateRequest{
		ISBN:          "9781234567890",
		Title:         "Concurrency in Practice",
		Category:      "Science",
		PublisherName: &name,
		Price:         125000,
		InitialStock:  12,
		Authors:       []string{"A. Rahman", "B. Santoso"},
	}
}

func TestBookCreateRequest_Valid(t *testing.T) {
	assert.Nil(t, helper.ValidateStruct(validCreateRequest()))
}

func TestBookCreateRequest_ISBNRules(t *testing.T) {
	req := validCreateRequest()
	req.ISBN = "123" // terlalu pendek
	errs := helper.ValidateStruct(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "isbn")

	req.ISBN = "97812345678AB" // bukan angka
	errs = helper.ValidateStruct(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "isbn")
}

func TestBookCreateRequest_CategoryEnum(t *testing.T) {
	req := validCreateRequest()
	req.Category = "Cooking"
	errs := helper.ValidateStruct(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "category")
}

func TestBookCreateRequest_NegativeStockRejected(t *testing.T) {
	req := validCreateRequest()
	req.InitialStock = -1
	errs := helper.ValidateStruct(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "initialstock")
}

func TestBookCreateRequest_ThresholdOptionalButPositive(t *testing.T) {
	req := validCreateRequest()
	req.Threshold = 0 // omitempty: 0 = pakai default
	assert.Nil(t, helper.ValidateStruct(req))

	req.Threshold = -3
	errs := helper.ValidateStruct(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "threshold")
}
