package types

type RecommendResponse struct {
	Message string `json:"message"`
}
