package dto

// Pointer fields tell "absent" apart from zero values so updates only touch
// what the client actually sent.
type ProductRequest struct {
	Name               *string  `json:"name" validate:"required,min=3,max=500"`
	ProductDescription *string  `json:"productDescription" validate:"omitempty"`
	ProductDetail      *string  `json:"productDetail" validate:"required,min=10,max=2000"`
	AffiliateLink      *string  `json:"affiliateLink" validate:"required,url"`
	Category           *string  `json:"category" validate:"required,min=1"`
	Quantity           *int64   `json:"quantity" validate:"required,gt=0"`
	Amount             *float64 `json:"amount" validate:"required,gt=0"`
	Discount           *float64 `json:"discount" validate:"required"`
	SellingPrice       *float64 `json:"sellingPrice" validate:"required,gt=0"`
	IsPublic           *bool    `json:"isPublic" validate:"required"`
}

type ProductUpdateRequest struct {
	Name               *string  `json:"name" validate:"omitempty,min=3,max=500"`
	ProductDescription *string  `json:"productDescription" validate:"omitempty"`
	ProductDetail      *string  `json:"productDetail" validate:"omitempty,min=10,max=2000"`
	AffiliateLink      *string  `json:"affiliateLink" validate:"omitempty,url"`
	Category           *string  `json:"category" validate:"omitempty,min=1"`
	Quantity           *int64   `json:"quantity" validate:"omitempty,gt=0"`
	Amount             *float64 `json:"amount" validate:"omitempty,gt=0"`
	Discount           *float64 `json:"discount" validate:"omitempty"`
	SellingPrice       *float64 `json:"sellingPrice" validate:"omitempty,gt=0"`
	IsPublic           *bool    `json:"isPublic" validate:"omitempty"`
}

type ProductSummary struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Thumbnail    string  `json:"thumbnail"`
	Amount       float64 `json:"amount"`
	Discount     float64 `json:"discount"`
	SellingPrice float64 `json:"sellingPrice"`
	IsPublic     bool    `json:"isPublic"`
}

type ProductCard struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Thumbnail     string  `json:"thumbnail"`
	AffiliateLink string  `json:"affiliateLink"`
	SellingPrice  float64 `json:"sellingPrice"`
}
