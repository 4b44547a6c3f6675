package services

import (
	"context"
	"fmt"

	"joblane-backend/internal/models"
)

type JobStore interface {
	List(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Insert(ctx context.Context, job *models.Job) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type JobService struct {
	jobs JobStore
}

func NewJobService(jobs JobStore) *JobService {
	return &JobService{jobs: jobs}
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	return s.jobs.List(ctx)
}

func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return job, nil
}

func (s *JobService) Create(ctx context.Context, job *models.Job) (string, error) {
	return s.jobs.Insert(ctx, job)
}

func (s *JobService) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	return s.jobs.Update(ctx, id, fields)
}

func (s *JobService) Delete(ctx context.Context, id string) (int64, error) {
	return s.jobs.Delete(ctx, id)
}
