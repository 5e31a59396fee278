package service

import (
	"context"

	"github.com/sesgrg/sesg-backend/internal/projects/domain"
	"github.com/sesgrg/sesg-backend/internal/store"
)

// Collections is the part of the collection store the project service uses.
type Collections interface {
	Read(collection string, filters map[string]string) []store.Record
	Insert(collection string, fields store.Record) store.Record
	Update(collection, id string, fields store.Record) (store.Record, error)
	Delete(collection, id string) bool
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store Collections
}

// NewProjectService creates a new project service
func NewProjectService(store Collections) *ProjectService {
	return &ProjectService{
		store: store,
	}
}

// List returns all projects matching the equality filters, in insertion order
func (s *ProjectService) List(_ context.Context, filters map[string]string) []store.Record {
	return s.store.Read(store.Projects, filters)
}

// Create validates and stores a new project
func (s *ProjectService) Create(_ context.Context, p *domain.Project) (store.Record, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.store.Insert(store.Projects, p.NewRecord()), nil
}

// Update merges the fields present in p into the stored project
func (s *ProjectService) Update(_ context.Context, id string, p *domain.Project) (store.Record, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.store.Update(store.Projects, id, p.Patch())
}

// Delete removes a project. Unknown ids are not an error.
func (s *ProjectService) Delete(_ context.Context, id string) bool {
	return s.store.Delete(store.Projects, id)
}
