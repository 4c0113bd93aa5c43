package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/oumar782/Oumarbackend/models"
	"github.com/oumar782/Oumarbackend/store"
	"github.com/oumar782/Oumarbackend/validation"
)

// ProjectStore is the storage surface the project handlers need.
type ProjectStore interface {
	Create(ctx context.Context, in store.ProjectInput) (models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int) (models.Project, error)
	Update(ctx context.Context, p models.Project) (models.Project, error)
	Delete(ctx context.Context, id int) error
}

type ProjectHandler struct {
	store ProjectStore
	log   *zap.Logger
}

func NewProjectHandler(s ProjectStore, l *zap.Logger) *ProjectHandler {
	return &ProjectHandler{store: s, log: l}
}

func (h *ProjectHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	if errs := validation.ValidateProjectCreate(payload); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	project, err := h.store.Create(c.Request.Context(), store.ProjectInput{
		Title:        strings.TrimSpace(payload["title"].(string)),
		Description:  strings.TrimSpace(payload["description"].(string)),
		Image:        stringOrNil(payload["image"]),
		Technologies: toStringArray(payload["technologies"]),
		Featured:     toBool(payload["featured"]),
		Stats:        toStats(payload["stats"]),
		Slug:         strings.TrimSpace(payload["slug"].(string)),
	})
	if errors.Is(err, store.ErrConflict) {
		fail(c, http.StatusConflict, "a project with this slug already exists")
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to create project", err)
		return
	}

	respond(c, http.StatusCreated, project)
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.store.List(c.Request.Context())
	if err != nil {
		serverError(c, h.log, "failed to list projects", err)
		return
	}
	respond(c, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "project id must be a number")
		return
	}

	project, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to fetch project", err)
		return
	}

	respond(c, http.StatusOK, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "project id must be a number")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	if errs := validation.ValidateProjectUpdate(payload); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	existing, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to fetch project", err)
		return
	}

	project, err := h.store.Update(c.Request.Context(), mergeProject(existing, payload))
	if errors.Is(err, store.ErrConflict) {
		fail(c, http.StatusConflict, "a project with this slug already exists")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to update project", err)
		return
	}

	respond(c, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "project id must be a number")
		return
	}

	if _, err := h.store.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "project not found")
			return
		}
		serverError(c, h.log, "failed to fetch project", err)
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "project not found")
			return
		}
		serverError(c, h.log, "failed to delete project", err)
		return
	}

	respond(c, http.StatusOK, gin.H{"deletedId": id})
}

// mergeProject overlays the fields present in the payload onto the stored
// record. Omitted fields keep their previous values.
func mergeProject(p models.Project, payload map[string]any) models.Project {
	if v, ok := payload["title"]; ok {
		p.Title = strings.TrimSpace(v.(string))
	}
	if v, ok := payload["description"]; ok {
		p.Description = strings.TrimSpace(v.(string))
	}
	if v, ok := payload["slug"]; ok {
		p.Slug = strings.TrimSpace(v.(string))
	}
	if v, ok := payload["image"]; ok {
		p.Image = stringOrNil(v)
	}
	if v, ok := payload["technologies"]; ok {
		p.Technologies = toStringArray(v)
	}
	if v, ok := payload["featured"]; ok {
		p.Featured = toBool(v)
	}
	if v, ok := payload["stats"]; ok {
		p.Stats = toStats(v)
	}
	return p
}

func stringOrNil(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func toStringArray(v any) pq.StringArray {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make(pq.StringArray, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func toStats(v any) models.Stats {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return models.Stats(m)
}
