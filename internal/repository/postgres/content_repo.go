package postgres

import (
	"context"

	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/repository"
	"gorm.io/gorm"
)

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *contentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *domain.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepository) GetByID(ctx context.Context, id uint) (*domain.Content, error) {
	var content domain.Content
	err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) List(ctx context.Context, filter repository.ContentFilter) ([]*domain.Content, error) {
	query := r.db.WithContext(ctx).Model(&domain.Content{})

	if filter.Query != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ReleaseYear != 0 {
		query = query.Where("release_year = ?", filter.ReleaseYear)
	}

	var contents []*domain.Content
	err := query.Order("created_at DESC").Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) Update(ctx context.Context, content *domain.Content) error {
	return r.db.WithContext(ctx).Save(content).Error
}

func (r *contentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Content{}, id).Error
}

func (r *contentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Content{}).Count(&count).Error
	return count, err
}
