package service

import (
	"context"
	"errors"
	"time"

	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository"
	"gorm.io/gorm"
)

var ErrContentNotFound = errors.New("content not found")

type ContentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

type ContentInput struct {
	Title           string
	Description     string
	ReleaseYear     int
	DurationMinutes int
	Genre           string
	Language        string
	Category        domain.ContentCategory
	IsPremium       bool
	VideoURL        string
	ThumbnailURL    string
}

func (s *ContentService) List(ctx context.Context, filter repository.ContentFilter) ([]*domain.Content, error) {
	return s.contentRepo.List(ctx, filter)
}

func (s *ContentService) Get(ctx context.Context, id uint) (*domain.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return content, nil
}

func (s *ContentService) Create(ctx context.Context, input ContentInput) (*domain.Content, error) {
	if input.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	content := &domain.Content{
		Title:           input.Title,
		Description:     input.Description,
		ReleaseYear:     input.ReleaseYear,
		DurationMinutes: input.DurationMinutes,
		Genre:           input.Genre,
		Language:        input.Language,
		Category:        input.Category,
		IsPremium:       input.IsPremium,
		VideoURL:        input.VideoURL,
		ThumbnailURL:    input.ThumbnailURL,
		CreatedAt:       time.Now(),
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentService) Update(ctx context.Context, id uint, input ContentInput) (*domain.Content, error) {
	content, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	content.Title = input.Title
	content.Description = input.Description
	content.ReleaseYear = input.ReleaseYear
	content.DurationMinutes = input.DurationMinutes
	content.Genre = input.Genre
	content.Language = input.Language
	content.Category = input.Category
	content.IsPremium = input.IsPremium
	content.VideoURL = input.VideoURL
	content.ThumbnailURL = input.ThumbnailURL

	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.contentRepo.Delete(ctx, id)
}
