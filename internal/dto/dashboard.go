package dto

type CountResponse struct {
	ProductCount  int64 `json:"productCount"`
	BlogCount     int64 `json:"blogCount"`
	CategoryCount int64 `json:"categoryCount"`
	BannerCount   int64 `json:"bannerCount"`
}
