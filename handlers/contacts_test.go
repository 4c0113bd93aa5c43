package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oumar782/Oumarbackend/models"
	"github.com/oumar782/Oumarbackend/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeContactStore struct {
	createFn  func(store.ContactInput) (models.Contact, error)
	listFn    func(store.ListOptions) ([]models.Contact, int, error)
	getFn     func(int) (models.Contact, error)
	replaceFn func(int, store.ContactInput) (models.Contact, error)
	deleteFn  func(int) (store.DeletedContact, error)
}

func (f *fakeContactStore) Create(_ context.Context, in store.ContactInput) (models.Contact, error) {
	return f.createFn(in)
}

func (f *fakeContactStore) List(_ context.Context, opts store.ListOptions) ([]models.Contact, int, error) {
	return f.listFn(opts)
}

func (f *fakeContactStore) Get(_ context.Context, id int) (models.Contact, error) {
	return f.getFn(id)
}

func (f *fakeContactStore) Replace(_ context.Context, id int, in store.ContactInput) (models.Contact, error) {
	return f.replaceFn(id, in)
}

func (f *fakeContactStore) Delete(_ context.Context, id int) (store.DeletedContact, error) {
	return f.deleteFn(id)
}

func newContactRouter(s ContactStore) *gin.Engine {
	r := gin.New()
	NewContactHandler(s, zap.NewNop()).Register(r.Group("/api/contacts"))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestContactCreate(t *testing.T) {
	var captured store.ContactInput
	fake := &fakeContactStore{
		createFn: func(in store.ContactInput) (models.Contact, error) {
			captured = in
			return models.Contact{
				ID:        1,
				Name:      in.Name,
				Email:     in.Email,
				Message:   in.Message,
				CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	r := newContactRouter(fake)

	w, body := doJSON(t, r, http.MethodPost, "/api/contacts/", map[string]any{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "hello",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Jane", data["name"])
	assert.NotEmpty(t, data["created_at"])
	assert.Equal(t, "jane@example.com", captured.Email)
}

func TestContactCreateCollectsAllValidationErrors(t *testing.T) {
	fake := &fakeContactStore{
		createFn: func(store.ContactInput) (models.Contact, error) {
			t.Fatal("store must not be reached on invalid input")
			return models.Contact{}, nil
		},
	}
	r := newContactRouter(fake)

	w, body := doJSON(t, r, http.MethodPost, "/api/contacts/", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Len(t, body["errors"], 3)
}

func TestContactListDefaultsAndPagination(t *testing.T) {
	var captured store.ListOptions
	fake := &fakeContactStore{
		listFn: func(opts store.ListOptions) ([]models.Contact, int, error) {
			captured = opts
			return []models.Contact{{ID: 6}, {ID: 7}}, 12, nil
		},
	}
	r := newContactRouter(fake)

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts/?page=2&limit=5&search=jo", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, store.ListOptions{
		Search:    "jo",
		Page:      2,
		Limit:     5,
		SortField: "created_at",
		SortDir:   "DESC",
	}, captured)

	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(12), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, float64(2), pagination["currentPage"])
	assert.Equal(t, float64(5), pagination["limit"])
	assert.Len(t, body["data"], 2)
}

func TestContactListBadParamsFallBackToDefaults(t *testing.T) {
	var captured store.ListOptions
	fake := &fakeContactStore{
		listFn: func(opts store.ListOptions) ([]models.Contact, int, error) {
			captured = opts
			return nil, 0, nil
		},
	}
	r := newContactRouter(fake)

	w, _ := doJSON(t, r, http.MethodGet, "/api/contacts/?page=zero&limit=-4", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 10, captured.Limit)
}

func TestContactListRejectsUnknownSort(t *testing.T) {
	fake := &fakeContactStore{
		listFn: func(store.ListOptions) ([]models.Contact, int, error) {
			t.Fatal("store must not be reached for a rejected sort")
			return nil, 0, nil
		},
	}
	r := newContactRouter(fake)

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts/?sort=password-asc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Len(t, body["errors"], 1)
}

func TestContactGetNotFound(t *testing.T) {
	fake := &fakeContactStore{
		getFn: func(int) (models.Contact, error) {
			return models.Contact{}, store.ErrNotFound
		},
	}
	r := newContactRouter(fake)

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts/999999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestContactReplace(t *testing.T) {
	fake := &fakeContactStore{
		replaceFn: func(id int, in store.ContactInput) (models.Contact, error) {
			return models.Contact{ID: id, Name: in.Name, Email: in.Email, Message: in.Message}, nil
		},
	}
	r := newContactRouter(fake)

	w, body := doJSON(t, r, http.MethodPut, "/api/contacts/3", map[string]any{
		"name":    "Updated",
		"email":   "u@d.io",
		"message": "changed",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(3), data["id"])
	assert.Equal(t, "Updated", data["name"])
}

func TestContactReplaceValidatesFullPayload(t *testing.T) {
	fake := &fakeContactStore{
		replaceFn: func(int, store.ContactInput) (models.Contact, error) {
			t.Fatal("store must not be reached on invalid input")
			return models.Contact{}, nil
		},
	}
	r := newContactRouter(fake)

	w, body := doJSON(t, r, http.MethodPut, "/api/contacts/3", map[string]any{"name": "Only"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, body["errors"], 2)
}

func TestContactDeleteTwice(t *testing.T) {
	calls := 0
	fake := &fakeContactStore{
		deleteFn: func(id int) (store.DeletedContact, error) {
			calls++
			if calls > 1 {
				return store.DeletedContact{}, store.ErrNotFound
			}
			return store.DeletedContact{ID: id, Name: "Jane"}, nil
		},
	}
	r := newContactRouter(fake)

	w, body := doJSON(t, r, http.MethodDelete, "/api/contacts/4", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(4), data["id"])
	assert.Equal(t, "Jane", data["name"])

	w, body = doJSON(t, r, http.MethodDelete, "/api/contacts/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestContactBadID(t *testing.T) {
	fake := &fakeContactStore{}
	r := newContactRouter(fake)

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}
