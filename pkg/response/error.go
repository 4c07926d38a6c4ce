package response

import (
	"errors"
	"net/http"
)

const (
	LabelValidation = "Validation Error"
	LabelAuth       = "Unauthorized"
	LabelNotFound   = "Not Found"
	LabelInternal   = "Internal Server Error"
)

// BizError 业务错误, Status 即 HTTP 状态码
type BizError struct {
	Status int
	Label  string
	Msg    string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(status int, msg string) *BizError {
	return &BizError{
		Status: status,
		Label:  Label(status),
		Msg:    msg,
	}
}

func NewValidationError(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func NewAuthError(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

func NewNotFoundError(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// Label 状态码对应的错误标签
func Label(status int) string {
	switch status {
	case http.StatusBadRequest:
		return LabelValidation
	case http.StatusUnauthorized:
		return LabelAuth
	case http.StatusNotFound:
		return LabelNotFound
	case http.StatusInternalServerError:
		return LabelInternal
	default:
		return http.StatusText(status)
	}
}

// IsStatus 判断 err 是否为指定状态码的业务错误
func IsStatus(err error, status int) bool {
	var be *BizError
	return errors.As(err, &be) && be.Status == status
}
