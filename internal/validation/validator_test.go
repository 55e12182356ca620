package validation

import (
	"testing"

	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func validProduct() dto.ProductRequest {
	return dto.ProductRequest{
		Name:          ptr("Running Shoe"),
		ProductDetail: ptr("Lightweight mesh upper"),
		AffiliateLink: ptr("https://shop.example.com/p/1"),
		Category:      ptr("Shoes"),
		Quantity:      ptr(int64(5)),
		Amount:        ptr(120.0),
		Discount:      ptr(0.0),
		SellingPrice:  ptr(99.0),
		IsPublic:      ptr(false),
	}
}

func TestValidateProductRequest(t *testing.T) {
	v := CreateValidator()

	testCases := []struct {
		Name            string
		Mutate          func(p *dto.ProductRequest)
		ExpectedMessage string
	}{
		{Name: "valid with zero discount and private", Mutate: func(p *dto.ProductRequest) {}},
		{Name: "missing name", Mutate: func(p *dto.ProductRequest) { p.Name = nil }, ExpectedMessage: `"name" is required`},
		{Name: "short name", Mutate: func(p *dto.ProductRequest) { p.Name = ptr("ab") }, ExpectedMessage: `"name" length must be at least 3 characters long`},
		{Name: "short detail", Mutate: func(p *dto.ProductRequest) { p.ProductDetail = ptr("short") }, ExpectedMessage: `"productDetail" length must be at least 10 characters long`},
		{Name: "bad link", Mutate: func(p *dto.ProductRequest) { p.AffiliateLink = ptr("not a link") }, ExpectedMessage: `"affiliateLink" must be a valid uri`},
		{Name: "zero quantity", Mutate: func(p *dto.ProductRequest) { p.Quantity = ptr(int64(0)) }, ExpectedMessage: `"quantity" must be a positive number`},
		{Name: "negative price", Mutate: func(p *dto.ProductRequest) { p.SellingPrice = ptr(-1.0) }, ExpectedMessage: `"sellingPrice" must be a positive number`},
		{Name: "missing visibility", Mutate: func(p *dto.ProductRequest) { p.IsPublic = nil }, ExpectedMessage: `"isPublic" is required`},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			payload := validProduct()
			tc.Mutate(&payload)

			err := v.Validate(&payload)
			if tc.ExpectedMessage == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.Equal(t, tc.ExpectedMessage, err.Error())
		})
	}
}

func TestValidateUpdateRequestsAllowEmptyPayload(t *testing.T) {
	v := CreateValidator()

	assert.NoError(t, v.Validate(&dto.ProductUpdateRequest{}))
	assert.NoError(t, v.Validate(&dto.BlogUpdateRequest{SEOTitle: ptr("")}))
	assert.EqualError(t, v.Validate(&dto.CategoryUpdateRequest{Name: ptr("ab")}), `"name" length must be at least 3 characters long`)
}

func TestValidateLoginRequest(t *testing.T) {
	v := CreateValidator()

	assert.EqualError(t, v.Validate(&dto.LoginRequest{Password: ptr("secret")}), `"email" is required`)
	assert.EqualError(t, v.Validate(&dto.LoginRequest{Email: ptr("admin"), Password: ptr("secret")}), `"email" must be a valid email`)
	assert.NoError(t, v.Validate(&dto.LoginRequest{Email: ptr("admin@example.com"), Password: ptr("secret")}))
}
