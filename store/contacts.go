package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/oumar782/Oumarbackend/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ContactStore struct {
	db *sqlx.DB
}

func NewContactStore(db *sqlx.DB) *ContactStore {
	return &ContactStore{db: db}
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type DeletedContact struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// ListOptions carries the contact list query parameters. SortField and
// SortDir must already be resolved against the allow-list.
type ListOptions struct {
	Search    string
	Page      int
	Limit     int
	SortField string
	SortDir   string
}

func (s *ContactStore) Create(ctx context.Context, in ContactInput) (models.Contact, error) {
	var contact models.Contact
	err := s.db.GetContext(ctx, &contact, `
		INSERT INTO contact (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, message, created_at`,
		in.Name, in.Email, in.Message)
	if err != nil {
		return models.Contact{}, fmt.Errorf("inserting contact: %w", err)
	}
	return contact, nil
}

func contactListQueries(opts ListOptions) (list, count sq.SelectBuilder) {
	list = psql.Select("id", "name", "email", "message", "created_at").From("contact")
	count = psql.Select("COUNT(*)").From("contact")

	if opts.Search != "" {
		term := "%" + opts.Search + "%"
		filter := sq.Or{
			sq.ILike{"name": term},
			sq.ILike{"email": term},
			sq.ILike{"message": term},
		}
		list = list.Where(filter)
		count = count.Where(filter)
	}

	list = list.
		OrderBy(opts.SortField + " " + opts.SortDir).
		Limit(uint64(opts.Limit)).
		Offset(uint64((opts.Page - 1) * opts.Limit))

	return list, count
}

// List returns one page of contacts plus the filtered total. The page and
// count queries run concurrently; either failure fails the call.
func (s *ContactStore) List(ctx context.Context, opts ListOptions) ([]models.Contact, int, error) {
	listQuery, countQuery := contactListQueries(opts)

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building contact list query: %w", err)
	}
	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building contact count query: %w", err)
	}

	contacts := []models.Contact{}
	var total int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.db.SelectContext(gctx, &contacts, listSQL, listArgs...); err != nil {
			return fmt.Errorf("listing contacts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.db.GetContext(gctx, &total, countSQL, countArgs...); err != nil {
			return fmt.Errorf("counting contacts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (s *ContactStore) Get(ctx context.Context, id int) (models.Contact, error) {
	var contact models.Contact
	err := s.db.GetContext(ctx, &contact, `
		SELECT id, name, email, message, created_at
		FROM contact
		WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrNotFound
	}
	if err != nil {
		return models.Contact{}, fmt.Errorf("fetching contact: %w", err)
	}
	return contact, nil
}

func (s *ContactStore) Replace(ctx context.Context, id int, in ContactInput) (models.Contact, error) {
	var contact models.Contact
	err := s.db.GetContext(ctx, &contact, `
		UPDATE contact
		SET name = $1, email = $2, message = $3
		WHERE id = $4
		RETURNING id, name, email, message, created_at`,
		in.Name, in.Email, in.Message, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrNotFound
	}
	if err != nil {
		return models.Contact{}, fmt.Errorf("updating contact: %w", err)
	}
	return contact, nil
}

func (s *ContactStore) Delete(ctx context.Context, id int) (DeletedContact, error) {
	var deleted DeletedContact
	err := s.db.GetContext(ctx, &deleted, `
		DELETE FROM contact
		WHERE id = $1
		RETURNING id, name`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return DeletedContact{}, ErrNotFound
	}
	if err != nil {
		return DeletedContact{}, fmt.Errorf("deleting contact: %w", err)
	}
	return deleted, nil
}
