package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    int
	}{
		{"all fields missing", map[string]any{}, 3},
		{"blank after trimming", map[string]any{"name": "  ", "email": " ", "message": "\t"}, 3},
		{"valid payload", map[string]any{"name": "Jane", "email": "a@b.co", "message": "hi"}, 0},
		{"missing message only", map[string]any{"name": "Jane", "email": "a@b.co"}, 1},
		{"non-string name", map[string]any{"name": 42, "email": "a@b.co", "message": "hi"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ValidateContact(tt.payload), tt.want)
		})
	}
}

func TestValidateContactEmailFormat(t *testing.T) {
	base := map[string]any{"name": "Jane", "message": "hi"}

	base["email"] = "not-an-email"
	errs := ValidateContact(base)
	require.Len(t, errs, 1)
	assert.Equal(t, "email must be a valid email address", errs[0])

	base["email"] = "a@b.co"
	assert.Empty(t, ValidateContact(base))

	base["email"] = "spaces in@local.part"
	assert.Len(t, ValidateContact(base), 1)
}

func TestValidateProjectCreate(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    []string
	}{
		{
			"all fields missing",
			map[string]any{},
			[]string{"title is required", "description is required", "slug is required"},
		},
		{
			"non-string title",
			map[string]any{"title": 7, "description": "d", "slug": "ok"},
			[]string{"title must be a string"},
		},
		{
			"invalid slug characters",
			map[string]any{"title": "t", "description": "d", "slug": "My Slug!"},
			[]string{"slug must contain only lowercase letters, numbers and hyphens"},
		},
		{
			"valid slug",
			map[string]any{"title": "t", "description": "d", "slug": "my-slug-1"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateProjectCreate(tt.payload))
		})
	}
}

func TestValidateProjectUpdate(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    int
	}{
		{"empty payload is valid", map[string]any{}, 0},
		{"absent fields produce no errors", map[string]any{"featured": true, "stats": map[string]any{"stars": 4}}, 0},
		{"present slug is validated", map[string]any{"slug": "Bad Slug"}, 1},
		{"present blank title rejected", map[string]any{"title": "  "}, 1},
		{"present valid subset", map[string]any{"title": "New", "slug": "new-slug"}, 0},
		{"non-string description", map[string]any{"description": false}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ValidateProjectUpdate(tt.payload), tt.want)
		})
	}
}

func TestContactSort(t *testing.T) {
	tests := []struct {
		raw       string
		field     string
		direction string
		wantErr   bool
	}{
		{"", "created_at", "DESC", false},
		{"created_at-desc", "created_at", "DESC", false},
		{"name-asc", "name", "ASC", false},
		{"email-DESC", "email", "DESC", false},
		{"message-asc", "message", "ASC", false},
		{"id-desc", "id", "DESC", false},
		{"name", "", "", true},
		{"name-up", "", "", true},
		{"password-asc", "", "", true},
		{"created_at;DROP TABLE contact-asc", "", "", true},
		{"-asc", "", "", true},
		{"name-", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			field, direction, err := ContactSort(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.field, field)
			assert.Equal(t, tt.direction, direction)
		})
	}
}
