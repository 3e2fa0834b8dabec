package handlers

import (
	"net/http"
	"strconv"

	"manuscript-review/helper"
	"manuscript-review/models"
	"manuscript-review/services"
	"manuscript-review/storage"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	authService    services.AuthService
	fileStore      storage.FileStore
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, authService services.AuthService, fileStore storage.FileStore) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		authService:    authService,
		fileStore:      fileStore,
		Helper:         httpHelper,
	}
}

// CreateArticle accepts a multipart form: title, edit_type and the
// manuscript as "file". The blob is stored in full before the article
// row is created.
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	if !validateRequest(c, req) {
		return
	}

	if !models.ValidEditType(req.EditType) {
		h.Helper.SendBadRequest(c, "invalid edit type", h.Helper.EmptyJsonMap())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "manuscript file is required", h.Helper.EmptyJsonMap())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	defer f.Close()

	key, err := h.fileStore.Save(storage.SlotOriginal, fileHeader.Filename, f)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(req, userID.(uint), key)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")

	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	var editor *models.Editor
	if role.(models.UserRole) == models.RoleEditor {
		if resolved, err := h.authService.GetEditorProfile(userID.(uint)); err == nil {
			editor = resolved
		}
	}

	articles, total, err := h.articleService.GetArticles(params, userID.(uint), role.(models.UserRole), editor)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetArticle(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) GetMyArticles(c *gin.Context) {
	userID, _ := c.Get("user_id")

	articles, err := h.articleService.GetMyArticles(userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", articles)
}

// DownloadArticle streams the edited manuscript to the author or the
// assigned editor once the review is completed.
func (h *ArticleHandler) DownloadArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")

	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var editor *models.Editor
	if role.(models.UserRole) == models.RoleEditor {
		if resolved, err := h.authService.GetEditorProfile(userID.(uint)); err == nil {
			editor = resolved
		}
	}

	article, err := h.articleService.Download(id, userID.(uint), editor)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	blob, err := h.fileStore.Open(*article.EditedFile)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	defer blob.Close()

	c.Header("Content-Disposition", `attachment; filename="`+*article.EditedFile+`"`)
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", blob, nil)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
