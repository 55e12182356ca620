package dto

type BannerResponse struct {
	ID    string `json:"_id"`
	Image string `json:"image"`
}
