package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"consulate-console/internal/resource"
	"consulate-console/internal/resource/schema"
	"consulate-console/pkg/response"
)

// List returns one page of records. The filter state comes straight from
// the URL query string; junk values fall back to defaults. An empty match
// is a normal 200 with an empty data array — the empty-state panel, never
// the error panel.
// @Summary List records
// @Description Paginated, filterable list of one managed resource
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource name (news, events, photos, videos, users)"
// @Param page query int false "Page number, 1-based"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "data + meta envelope"
// @Router /api/v1/{resource} [get]
func (h *Handler[T]) List(c *gin.Context) {
	ctx := c.Request.Context()

	filters := resource.DecodeFilters(h.desc, c.Request.URL.Query())

	env, err := h.q.List(ctx, filters)
	if err != nil {
		h.queryError(c, err)
		return
	}

	c.JSON(http.StatusOK, env)
}

// Stats returns the aggregate counters for the resource dashboard.
// @Summary Resource statistics
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource name"
// @Success 200 {object} map[string]interface{} "aggregate counters"
// @Router /api/v1/{resource}/stats [get]
func (h *Handler[T]) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.q.Stats(ctx)
	if err != nil {
		h.queryError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Detail returns one record by ID.
// @Summary Get one record
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]interface{} "the record"
// @Failure 404 {object} response.Resp
// @Router /api/v1/{resource}/{id} [get]
func (h *Handler[T]) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	record, err := h.q.Detail(ctx, c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Create validates and forwards a new record. The response body is always
// the uniform mutation result; the form branches on its success flag.
// @Summary Create a record
// @Tags Resources
// @Accept json
// @Accept mpfd
// @Produce json
// @Param resource path string true "Resource name"
// @Success 201 {object} map[string]interface{} "mutation result"
// @Failure 400 {object} map[string]interface{} "mutation result with success=false"
// @Router /api/v1/{resource} [post]
func (h *Handler[T]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := h.bind(c)
	if err != nil {
		h.bindError(c, err)
		return
	}

	res := h.q.Create(ctx, payload)
	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Update validates and forwards changes to an existing record.
// @Summary Update a record
// @Tags Resources
// @Accept json
// @Accept mpfd
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]interface{} "mutation result"
// @Failure 400 {object} map[string]interface{} "mutation result with success=false"
// @Router /api/v1/{resource}/{id} [put]
func (h *Handler[T]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := h.bind(c)
	if err != nil {
		h.bindError(c, err)
		return
	}

	res := h.q.Update(ctx, c.Param("id"), payload)
	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete removes a record. Deleting twice returns a structured failure.
// @Summary Delete a record
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]interface{} "mutation result"
// @Failure 400 {object} map[string]interface{} "mutation result with success=false"
// @Router /api/v1/{resource}/{id} [delete]
func (h *Handler[T]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	res := h.q.Delete(ctx, c.Param("id"))
	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// bindError reports a malformed or invalid request body, with per-field
// detail when the binder already ran the schema.
func (h *Handler[T]) bindError(c *gin.Context, err error) {
	if fieldErrs, ok := schema.AsFieldErrors(err); ok {
		response.Error(c, http.StatusBadRequest, fieldErrs.Error(), fieldErrs)
		return
	}
	response.Error(c, http.StatusBadRequest, "requête invalide", nil)
}
