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

type NewsletterHandler struct {
	newsletter usecase.NewsletterUseCase
}

func NewNewsletterHandler(newsletter usecase.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

// @Summary Subscribe to the newsletter
// @Description Register an email address for the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body reqdto.SubscribeRequest true "Subscription request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	sub, err := h.newsletter.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrAlreadySubscribed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email is already subscribed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.Msg("Successfully subscribed to newsletter", gin.H{
		"email":        sub.Email,
		"subscribedAt": sub.SubscribedAt,
	}))
}

// @Summary Unsubscribe from the newsletter
// @Description Mark an email address as unsubscribed
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body reqdto.UnsubscribeRequest true "Unsubscription request"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req reqdto.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	if err := h.newsletter.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, errs.ErrSubscriberNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Email not found in subscribers list", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Successfully unsubscribed from newsletter", nil))
}

// @Summary List subscribers
// @Description List newsletter subscribers filtered by status
// @Tags newsletter
// @Security BearerAuth
// @Produce json
// @Param status query string false "Subscription status" Enums(active, unsubscribed, all)
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ListEnvelope
// @Failure 401 {object} httperr.Response
// @Router /newsletter/subscribers [get]
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	var q reqdto.SubscriberListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	list, err := h.newsletter.ListSubscribers(c.Request.Context(),
		usecase.SubscriberFilter{Status: q.Status}, q.Page, q.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Paged(resdto.FromSubscriberList(list.Items), list.PageInfo))
}

// @Summary Send newsletter
// @Description Send a newsletter issue to every active subscriber
// @Tags newsletter
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BroadcastRequest true "Newsletter issue"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /newsletter/send [post]
func (h *NewsletterHandler) Send(c *gin.Context) {
	var req reqdto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	report, err := h.newsletter.Broadcast(c.Request.Context(), req.Subject, req.Content)
	if err != nil {
		if errors.Is(err, errs.ErrNoActiveSubscribers) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No active subscribers found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.Msg("Newsletter sent", resdto.FromBroadcastReport(report)))
}
