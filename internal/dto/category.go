package dto

type CategoryRequest struct {
	Name     *string `json:"name" validate:"required,min=3,max=50"`
	IsPublic *bool   `json:"isPublic" validate:"required"`
}

type CategoryUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=50"`
	IsPublic *bool   `json:"isPublic" validate:"omitempty"`
}

type CategorySummary struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	IsPublic  bool   `json:"isPublic"`
}

type CategoryName struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
