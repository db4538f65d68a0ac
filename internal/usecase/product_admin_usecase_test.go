package usecase

import (
	"context"
	"testing"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductReq() *SaveProductReq {
	return &SaveProductReq{
		Name:     "Куртка",
		Slug:     "kurtka",
		Price:    dec("3500"),
		Currency: domain.CurrencyRUB,
	}
}

func TestAddProduct_Validation(t *testing.T) {
	uc := NewProductAdminUC(&mockProductRepo{}, &mockImagesInfra{}, &mockCacheRepo{}, &fakeTransactor{}, noopLogger{})

	cases := []struct {
		name    string
		mutate  func(*SaveProductReq)
		wantErr error
	}{
		{"empty name", func(r *SaveProductReq) { r.Name = " " }, e.ErrProductNameRequired},
		{"empty slug", func(r *SaveProductReq) { r.Slug = "" }, e.ErrProductNameRequired},
		{"zero price", func(r *SaveProductReq) { r.Price = decimal.Decimal{} }, e.ErrPriceMustBePositive},
		{"negative price", func(r *SaveProductReq) { r.Price = dec("-10") }, e.ErrPriceMustBePositive},
		{"unknown currency", func(r *SaveProductReq) { r.Currency = "USD" }, e.ErrUnknownCurrency},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validProductReq()
			tc.mutate(req)

			_, err := uc.AddProduct(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAddProduct_UploadsImagesAndLinksKeys(t *testing.T) {
	products := &mockProductRepo{createdID: 5}
	images := &mockImagesInfra{keys: []string{"kurtka/a.jpg", "kurtka/b.jpg"}}
	uc := NewProductAdminUC(products, images, &mockCacheRepo{}, &fakeTransactor{}, noopLogger{})

	req := validProductReq()
	req.Images = []ProductImage{
		{Data: []byte("a"), MimeType: "image/jpeg"},
		{Data: []byte("b"), MimeType: "image/jpeg"},
	}

	id, err := uc.AddProduct(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, 2, images.uploaded)
	assert.Equal(t, images.keys, products.imageKeys)
}

func TestAddProduct_CleansUpImagesOnFailedLink(t *testing.T) {
	products := &mockProductRepo{createdID: 5, setKeysErr: assert.AnError}
	images := &mockImagesInfra{keys: []string{"kurtka/a.jpg"}}
	uc := NewProductAdminUC(products, images, &mockCacheRepo{}, &fakeTransactor{}, noopLogger{})

	req := validProductReq()
	req.Images = []ProductImage{{Data: []byte("a"), MimeType: "image/jpeg"}}

	_, err := uc.AddProduct(context.Background(), req)
	require.Error(t, err)
	// Изображения уже в S3, откат БД их не трогает — нужна зачистка
	assert.Equal(t, images.keys, images.cleanedUp)
}

func TestUpdateProduct_InvalidatesCache(t *testing.T) {
	cache := &mockCacheRepo{}
	uc := NewProductAdminUC(&mockProductRepo{}, &mockImagesInfra{}, cache, &fakeTransactor{}, noopLogger{})

	err := uc.UpdateProduct(context.Background(), 7, validProductReq())
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, cache.deleted)
}

func TestArchiveProduct_InvalidatesCache(t *testing.T) {
	cache := &mockCacheRepo{}
	uc := NewProductAdminUC(&mockProductRepo{}, &mockImagesInfra{}, cache, &fakeTransactor{}, noopLogger{})

	require.NoError(t, uc.ArchiveProduct(context.Background(), 9))
	assert.Equal(t, []int64{9}, cache.deleted)
}
