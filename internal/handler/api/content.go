package api

import (
	"errors"
	"net/http"
	"strconv"

	"delacream-park/internal/domain/content"
	reqdto "delacream-park/internal/handler/dto/request"
	resdto "delacream-park/internal/handler/dto/response"
	"delacream-park/internal/handler/httperr"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	content usecase.ContentUseCase
}

func NewContentHandler(contentUC usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{content: contentUC}
}

// @Summary List content pages
// @Description List pages with optional status and slug filters
// @Tags content
// @Produce json
// @Param status query string false "Page status" Enums(draft, published)
// @Param slug query string false "Page slug"
// @Success 200 {object} resdto.CountEnvelope
// @Router /content [get]
func (h *ContentHandler) List(c *gin.Context) {
	var q reqdto.ContentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	pages := h.content.List(c.Request.Context(), usecase.ContentFilter{Status: q.Status, Slug: q.Slug})
	c.JSON(http.StatusOK, resdto.Counted(resdto.FromPageList(pages), len(pages)))
}

// @Summary Get page by slug
// @Description Fetch one content page
// @Tags content
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /content/{slug} [get]
func (h *ContentHandler) GetBySlug(c *gin.Context) {
	page, err := h.content.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, errs.ErrContentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Content not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromPage(page)))
}

// @Summary Create content page
// @Description Create a page; slugs are unique
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateContentRequest true "New page"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /content [post]
func (h *ContentHandler) Create(c *gin.Context) {
	var req reqdto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	page, err := h.content.Create(c.Request.Context(), req.Slug, req.Title, req.Content, req.StatusOrDefault())
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateSlug) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Content with this slug already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.Msg("Content created successfully", resdto.FromPage(page)))
}

// @Summary Update content page
// @Description Merge the provided fields into one page
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Page ID"
// @Param request body reqdto.UpdateContentRequest true "Partial update"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /content/{id} [put]
func (h *ContentHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid content id", nil)
		return
	}

	var req reqdto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	page, err := h.content.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, errs.ErrContentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Content not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Content updated successfully", resdto.FromPage(page)))
}

// @Summary Publish or unpublish a page
// @Description Set a page's status
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Page ID"
// @Param request body reqdto.PublishContentRequest true "Status"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /content/{id}/publish [put]
func (h *ContentHandler) Publish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid content id", nil)
		return
	}

	var req reqdto.PublishContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	status, err := content.NewStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid content status", nil)
		return
	}

	page, err := h.content.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, errs.ErrContentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Content not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Content status updated", resdto.FromPage(page)))
}

// @Summary Delete content page
// @Description Remove one page
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Page ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /content/{id} [delete]
func (h *ContentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid content id", nil)
		return
	}

	if err := h.content.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrContentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Content not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Content deleted successfully", nil))
}
