package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/oumar782/Oumarbackend/models"
)

type ProjectStore struct {
	db *sqlx.DB
}

func NewProjectStore(db *sqlx.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

type ProjectInput struct {
	Title        string
	Description  string
	Image        *string
	Technologies pq.StringArray
	Featured     bool
	Stats        models.Stats
	Slug         string
}

const projectColumns = `id, title, description, image, technologies, featured, stats, slug, created_at, updated_at`

func (s *ProjectStore) Create(ctx context.Context, in ProjectInput) (models.Project, error) {
	var project models.Project
	err := s.db.GetContext(ctx, &project, `
		INSERT INTO projects (title, description, image, technologies, featured, stats, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+projectColumns,
		in.Title, in.Description, in.Image, in.Technologies, in.Featured, in.Stats, in.Slug)
	if isUniqueViolation(err) {
		return models.Project{}, ErrConflict
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("inserting project: %w", err)
	}
	return project, nil
}

func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.db.SelectContext(ctx, &projects, `
		SELECT `+projectColumns+`
		FROM projects
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectStore) Get(ctx context.Context, id int) (models.Project, error) {
	var project models.Project
	err := s.db.GetContext(ctx, &project, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("fetching project: %w", err)
	}
	return project, nil
}

// Update writes a fully merged project record. Callers fetch the stored row
// first and overlay only the fields supplied by the client, so omitted
// fields keep their previous values. updated_at always refreshes.
func (s *ProjectStore) Update(ctx context.Context, p models.Project) (models.Project, error) {
	var project models.Project
	err := s.db.GetContext(ctx, &project, `
		UPDATE projects
		SET title = $1, description = $2, image = $3, technologies = $4,
			featured = $5, stats = $6, slug = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
		RETURNING `+projectColumns,
		p.Title, p.Description, p.Image, p.Technologies, p.Featured, p.Stats, p.Slug, p.ID)
	if isUniqueViolation(err) {
		return models.Project{}, ErrConflict
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("updating project: %w", err)
	}
	return project, nil
}

func (s *ProjectStore) Delete(ctx context.Context, id int) error {
	var deletedID int
	err := s.db.GetContext(ctx, &deletedID, `
		DELETE FROM projects
		WHERE id = $1
		RETURNING id`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}
