package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Stats holds arbitrary project metrics, stored as JSONB.
type Stats map[string]any

func (s Stats) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *Stats) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("stats: cannot scan %T", src)
	}
	return json.Unmarshal(b, s)
}

type Project struct {
	ID           int            `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	Image        *string        `db:"image" json:"image"`
	Technologies pq.StringArray `db:"technologies" json:"technologies"`
	Featured     bool           `db:"featured" json:"featured"`
	Stats        Stats          `db:"stats" json:"stats"`
	Slug         string         `db:"slug" json:"slug"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}
