package api

import (
	"errors"
	"net/http"

	reqdto "delacream-park/internal/handler/dto/request"
	resdto "delacream-park/internal/handler/dto/response"
	"delacream-park/internal/handler/httperr"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contact usecase.ContactUseCase
}

func NewContactHandler(contact usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// @Summary Send contact message
// @Description Submit the contact form; notifies the business and acknowledges the sender
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact form"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /contact/send [post]
func (h *ContactHandler) Send(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	if err := h.contact.Send(c.Request.Context(), req.ToMessage()); err != nil {
		if errors.Is(err, errs.ErrMailDelivery) {
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				"Failed to send message. Please try again later.", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Message sent successfully. We will get back to you soon!", nil))
}

// @Summary Contact directory
// @Description Static contact details, departments, social media and hours
// @Tags contact
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /contact/info [get]
func (h *ContactHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.OK(h.contact.Info(c.Request.Context())))
}
