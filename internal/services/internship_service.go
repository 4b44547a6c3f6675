package services

import (
	"context"
	"fmt"

	"joblane-backend/internal/models"
)

type InternshipStore interface {
	List(ctx context.Context) ([]models.Internship, error)
	SearchByTitle(ctx context.Context, title string) ([]models.Internship, error)
	Insert(ctx context.Context, internship *models.Internship) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type InternshipService struct {
	internships InternshipStore
}

func NewInternshipService(internships InternshipStore) *InternshipService {
	return &InternshipService{internships: internships}
}

func (s *InternshipService) List(ctx context.Context) ([]models.Internship, error) {
	return s.internships.List(ctx)
}

// Search matches internships whose title contains the given text,
// case-insensitive.
func (s *InternshipService) Search(ctx context.Context, title string) ([]models.Internship, error) {
	return s.internships.SearchByTitle(ctx, title)
}

func (s *InternshipService) Create(ctx context.Context, internship *models.Internship) (string, error) {
	return s.internships.Insert(ctx, internship)
}

func (s *InternshipService) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	modified, err := s.internships.Update(ctx, id, fields)
	if err != nil {
		return 0, err
	}
	if modified == 0 {
		return 0, fmt.Errorf("internship %s: %w", id, ErrNotFound)
	}
	return modified, nil
}

func (s *InternshipService) Delete(ctx context.Context, id string) error {
	deleted, err := s.internships.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("internship %s: %w", id, ErrNotFound)
	}
	return nil
}
