package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"delacream-park/internal/domain/gallery"
	reqdto "delacream-park/internal/handler/dto/request"
	resdto "delacream-park/internal/handler/dto/response"
	"delacream-park/internal/handler/httperr"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"

	"github.com/gin-gonic/gin"
)

// uploadFieldName is the multipart form field carrying the image files.
const uploadFieldName = "images"

type GalleryHandler struct {
	gallery usecase.GalleryUseCase
}

func NewGalleryHandler(galleryUC usecase.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{gallery: galleryUC}
}

// @Summary List gallery images
// @Description List images with an optional category filter
// @Tags gallery
// @Produce json
// @Param category query string false "Image category" Enums(business-park, restaurant, hotel, events, all)
// @Success 200 {object} resdto.CountEnvelope
// @Router /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	var q reqdto.GalleryListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	images := h.gallery.List(c.Request.Context(), q.Category)
	c.JSON(http.StatusOK, resdto.Counted(resdto.FromImageList(images), len(images)))
}

// @Summary Upload gallery images
// @Description Upload up to 10 images as one batch; any invalid file rejects the batch
// @Tags gallery
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Image files"
// @Param category formData string true "Image category"
// @Param title formData string false "Shared title"
// @Param description formData string false "Shared description"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /gallery/upload [post]
func (h *GalleryHandler) Upload(c *gin.Context) {
	var form reqdto.GalleryUploadForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid multipart form", nil)
		return
	}

	in := usecase.UploadInput{
		Category:    gallery.Category(form.Category),
		Title:       form.Title,
		Description: form.Description,
		Files:       toUploadFiles(multipartForm.File[uploadFieldName]),
	}

	images, err := h.gallery.Upload(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoFilesUploaded):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No files uploaded", nil)
		case errors.Is(err, errs.ErrTooManyFiles):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Too many files in one upload", nil)
		case errors.Is(err, errs.ErrInvalidFileType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Only JPEG, PNG and WebP images are allowed", nil)
		case errors.Is(err, errs.ErrFileTooLarge):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "File exceeds the maximum allowed size", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.Msg("Images uploaded successfully", resdto.FromImageList(images)))
}

func toUploadFiles(headers []*multipart.FileHeader) []usecase.UploadFile {
	files := make([]usecase.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, usecase.UploadFile{
			OriginalName: fh.Filename,
			ContentType:  fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return files
}

// @Summary Update gallery image
// @Description Merge the provided fields into one image record
// @Tags gallery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Image ID"
// @Param request body reqdto.UpdateGalleryRequest true "Partial update"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /gallery/{id} [put]
func (h *GalleryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image id", nil)
		return
	}

	var req reqdto.UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	img, err := h.gallery.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, errs.ErrImageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Image not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Image updated successfully", resdto.FromImage(img)))
}

// @Summary Delete gallery image
// @Description Remove one image record and its file
// @Tags gallery
// @Security BearerAuth
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image id", nil)
		return
	}

	if err := h.gallery.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrImageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Image not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Image deleted successfully", nil))
}
