package handlers

import (
	"manuscript-review/helper"
	"manuscript-review/models"
	"manuscript-review/services"
	"manuscript-review/storage"

	"github.com/gin-gonic/gin"
)

// EditorHandler is the reviewer's work surface: the claimable pool, the
// in-progress queue, taking an article and submitting the finished edit.
type EditorHandler struct {
	articleService   services.ArticleService
	lifecycleService services.LifecycleService
	authService      services.AuthService
	fileStore        storage.FileStore
	Helper           *helper.HTTPHelper
}

func NewEditorHandler(articleService services.ArticleService, lifecycleService services.LifecycleService, authService services.AuthService, fileStore storage.FileStore) *EditorHandler {
	return &EditorHandler{
		articleService:   articleService,
		lifecycleService: lifecycleService,
		authService:      authService,
		fileStore:        fileStore,
		Helper:           httpHelper,
	}
}

// currentEditor resolves the caller's editor profile. The role gate in
// the router already requires the editor role; this turns it into a
// typed editor with a specialization.
func (h *EditorHandler) currentEditor(c *gin.Context) (*models.Editor, bool) {
	userID, _ := c.Get("user_id")

	editor, err := h.authService.GetEditorProfile(userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return nil, false
	}
	return editor, true
}

func (h *EditorHandler) GetAvailableArticles(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	articles, err := h.articleService.ListAvailable(editor)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Available articles loaded", articles)
}

func (h *EditorHandler) GetAssignedArticles(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	articles, err := h.articleService.ListAssigned(editor)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Assigned articles loaded", articles)
}

func (h *EditorHandler) TakeArticle(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.lifecycleService.Claim(id, editor)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article taken successfully", article)
}

// SubmitArticle accepts a multipart form with the edited manuscript as
// "edited_file" plus optional comments. The blob is stored before the
// transition transaction starts, so no lock spans the upload.
func (h *EditorHandler) SubmitArticle(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.SubmitArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	fileHeader, err := c.FormFile("edited_file")
	if err != nil {
		h.Helper.SendBadRequest(c, "edited file is required", h.Helper.EmptyJsonMap())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	defer f.Close()

	key, err := h.fileStore.Save(storage.SlotEdited, fileHeader.Filename, f)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	article, err := h.lifecycleService.Submit(id, editor, key, req.Comments)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article submitted successfully", article)
}
