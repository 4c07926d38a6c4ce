package service

import (
	"Portfolio/dao"
	"Portfolio/models"
	"Portfolio/pkg/response"
	"Portfolio/pkg/rocketmq"
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength    = 50
	MaxMessageLength = 500
)

var _ IGuestbookService = (*GuestbookService)(nil)

type IGuestbookService interface {
	List(ctx context.Context) ([]*models.GuestbookEntry, error)
	Create(ctx context.Context, name, message *string) (*models.GuestbookEntry, error)
	Delete(ctx context.Context, rawID string) error
}

type GuestbookService struct {
	GuestbookDAO *dao.GuestbookDAO
	Publisher    rocketmq.Publisher
}

func (s *GuestbookService) List(ctx context.Context) ([]*models.GuestbookEntry, error) {
	items, err := s.GuestbookDAO.ListNewest(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guestbook: %w", err)
	}
	return items, nil
}

func (s *GuestbookService) Create(ctx context.Context, name, message *string) (*models.GuestbookEntry, error) {
	n, m, err := validateEntry(name, message)
	if err != nil {
		return nil, err
	}

	entry := &models.GuestbookEntry{Name: n, Message: m}
	if err := s.GuestbookDAO.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create guestbook entry: %w", err)
	}

	s.Publisher.Publish(ctx, rocketmq.TagGuestbookCreated, entry)
	return entry, nil
}

// validateEntry 按顺序校验, 遇到第一个错误即返回
func validateEntry(name, message *string) (string, string, error) {
	if name == nil || message == nil {
		return "", "", response.NewValidationError("name and message required")
	}

	n := strings.TrimSpace(*name)
	m := strings.TrimSpace(*message)
	if n == "" || m == "" {
		return "", "", response.NewValidationError("must not be empty")
	}
	if utf8.RuneCountInString(n) > MaxNameLength {
		return "", "", response.NewValidationError("name too long")
	}
	if utf8.RuneCountInString(m) > MaxMessageLength {
		return "", "", response.NewValidationError("message too long")
	}
	return n, m, nil
}

func (s *GuestbookService) Delete(ctx context.Context, rawID string) error {
	if rawID == "" {
		return response.NewValidationError("id required")
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return response.NewValidationError("invalid id")
	}
	// 自增 id 从 1 开始
	if id <= 0 {
		return response.NewNotFoundError("guestbook entry not found")
	}

	deleted, err := s.GuestbookDAO.DeleteByID(ctx, uint64(id))
	if err != nil {
		return fmt.Errorf("delete guestbook entry %d: %w", id, err)
	}
	if !deleted {
		return response.NewNotFoundError("guestbook entry not found")
	}

	s.Publisher.Publish(ctx, rocketmq.TagGuestbookDeleted, map[string]int64{"id": id})
	return nil
}
