package handlers

import (
	"manuscript-review/helper"
	"manuscript-review/models"
	"manuscript-review/services"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackService services.FeedbackService
	Helper          *helper.HTTPHelper
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		Helper:          httpHelper,
	}
}

func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	if !validateRequest(c, req) {
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(req, userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Feedback created", feedback)
}

func (h *FeedbackHandler) GetFeedbacks(c *gin.Context) {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")

	feedbacks, err := h.feedbackService.GetFeedbacks(userID.(uint), role.(models.UserRole))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Feedbacks loaded", feedbacks)
}
