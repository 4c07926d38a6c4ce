package types

// CreateGuestbookRequest 指针区分缺省与空串
type CreateGuestbookRequest struct {
	Name    *string `json:"name"`
	Message *string `json:"message"`
}
