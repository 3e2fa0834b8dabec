package handlers

import (
	"errors"

	"manuscript-review/helper"
	"manuscript-review/models"
	"manuscript-review/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler gates submissions into the review pool and manages
// editors and statistics. The router restricts every route here to the
// admin role.
type AdminHandler struct {
	articleService   services.ArticleService
	lifecycleService services.LifecycleService
	editorService    services.EditorService
	statsService     services.StatsService
	Helper           *helper.HTTPHelper
}

func NewAdminHandler(articleService services.ArticleService, lifecycleService services.LifecycleService, editorService services.EditorService, statsService services.StatsService) *AdminHandler {
	return &AdminHandler{
		articleService:   articleService,
		lifecycleService: lifecycleService,
		editorService:    editorService,
		statsService:     statsService,
		Helper:           httpHelper,
	}
}

func (h *AdminHandler) GetPendingArticles(c *gin.Context) {
	articles, err := h.articleService.GetPending()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pending articles loaded", articles)
}

func (h *AdminHandler) ApproveArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.lifecycleService.Approve(id, userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article approved successfully", article)
}

func (h *AdminHandler) RejectArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.RejectArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	if !validateRequest(c, req) {
		return
	}

	article, err := h.lifecycleService.Reject(id, userID.(uint), req.Reason)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article rejected successfully", article)
}

func (h *AdminHandler) CreateEditor(c *gin.Context) {
	var req models.CreateEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	if !validateRequest(c, req) {
		return
	}

	editor, err := h.editorService.CreateEditor(req)
	if err != nil {
		var notFound models.NotFoundError
		if errors.As(err, &notFound) {
			h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendCreated(c, "Editor created", editor)
}

func (h *AdminHandler) GetEditors(c *gin.Context) {
	editors, err := h.editorService.GetEditors()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Editors loaded", editors)
}

func (h *AdminHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statsService.GetStatistics()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Statistics loaded", stats)
}
