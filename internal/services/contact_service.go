package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"joblane-backend/internal/models"
)

type ContactStore interface {
	Insert(ctx context.Context, contact *models.Contact) (string, error)
	List(ctx context.Context) ([]models.Contact, error)
}

type ContactService struct {
	contacts ContactStore
}

func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Submit(ctx context.Context, contact *models.Contact) (string, error) {
	var fields *multierror.Error
	if contact.Name == "" {
		fields = multierror.Append(fields, errors.New("name is required"))
	}
	if contact.Email == "" {
		fields = multierror.Append(fields, errors.New("email is required"))
	}
	if contact.Message == "" {
		fields = multierror.Append(fields, errors.New("message is required"))
	}
	if err := fields.ErrorOrNil(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	contact.CreatedAt = time.Now()
	return s.contacts.Insert(ctx, contact)
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.contacts.List(ctx)
}
