package dto

type BlogRequest struct {
	Title          *string `json:"title" validate:"required,min=3,max=50"`
	Content        *string `json:"content" validate:"required,min=1"`
	IsPublic       *bool   `json:"isPublic" validate:"required"`
	SEOTitle       *string `json:"seoTitle" validate:"omitempty"`
	SEODescription *string `json:"seoDescription" validate:"omitempty"`
	SEOKeywords    *string `json:"seoKeywords" validate:"omitempty"`
}

type BlogUpdateRequest struct {
	Title          *string `json:"title" validate:"omitempty,min=3,max=50"`
	Content        *string `json:"content" validate:"omitempty,min=1"`
	IsPublic       *bool   `json:"isPublic" validate:"omitempty"`
	SEOTitle       *string `json:"seoTitle" validate:"omitempty"`
	SEODescription *string `json:"seoDescription" validate:"omitempty"`
	SEOKeywords    *string `json:"seoKeywords" validate:"omitempty"`
}

type BlogSummary struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	IsPublic  bool   `json:"isPublic"`
}

type BlogCard struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}
