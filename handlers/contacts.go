package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oumar782/Oumarbackend/models"
	"github.com/oumar782/Oumarbackend/store"
	"github.com/oumar782/Oumarbackend/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ContactStore is the storage surface the contact handlers need.
type ContactStore interface {
	Create(ctx context.Context, in store.ContactInput) (models.Contact, error)
	List(ctx context.Context, opts store.ListOptions) ([]models.Contact, int, error)
	Get(ctx context.Context, id int) (models.Contact, error)
	Replace(ctx context.Context, id int, in store.ContactInput) (models.Contact, error)
	Delete(ctx context.Context, id int) (store.DeletedContact, error)
}

type ContactHandler struct {
	store ContactStore
	log   *zap.Logger
}

func NewContactHandler(s ContactStore, l *zap.Logger) *ContactHandler {
	return &ContactHandler{store: s, log: l}
}

func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Replace)
	rg.DELETE("/:id", h.Delete)
}

func (h *ContactHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	if errs := validation.ValidateContact(payload); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	contact, err := h.store.Create(c.Request.Context(), store.ContactInput{
		Name:    payload["name"].(string),
		Email:   payload["email"].(string),
		Message: payload["message"].(string),
	})
	if err != nil {
		serverError(c, h.log, "failed to create contact message", err)
		return
	}

	respond(c, http.StatusCreated, contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	sortField, sortDir, err := validation.ContactSort(c.Query("sort"))
	if err != nil {
		failValidation(c, []string{err.Error()})
		return
	}

	contacts, total, err := h.store.List(c.Request.Context(), store.ListOptions{
		Search:    c.Query("search"),
		Page:      page,
		Limit:     limit,
		SortField: sortField,
		SortDir:   sortDir,
	})
	if err != nil {
		serverError(c, h.log, "failed to list contact messages", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    contacts,
		"pagination": models.Pagination{
			Total:       total,
			TotalPages:  (total + limit - 1) / limit,
			CurrentPage: page,
			Limit:       limit,
		},
	})
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "contact id must be a number")
		return
	}

	contact, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "contact message not found")
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to fetch contact message", err)
		return
	}

	respond(c, http.StatusOK, contact)
}

func (h *ContactHandler) Replace(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "contact id must be a number")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	if errs := validation.ValidateContact(payload); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	contact, err := h.store.Replace(c.Request.Context(), id, store.ContactInput{
		Name:    payload["name"].(string),
		Email:   payload["email"].(string),
		Message: payload["message"].(string),
	})
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "contact message not found")
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to update contact message", err)
		return
	}

	respond(c, http.StatusOK, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "contact id must be a number")
		return
	}

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "contact message not found")
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to delete contact message", err)
		return
	}

	respond(c, http.StatusOK, deleted)
}
