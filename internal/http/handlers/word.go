package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/vocab-builder/internal/domain"
	"github.com/yungbote/vocab-builder/internal/http/response"
	"github.com/yungbote/vocab-builder/internal/platform/apierr"
	"github.com/yungbote/vocab-builder/internal/services"
)

type WordHandler struct {
	wordService services.WordService
}

func NewWordHandler(wordService services.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// Register attaches the vocabulary routes.
func (h *WordHandler) Register(r gin.IRoutes) {
	r.GET("/words", h.ListWords)
	r.POST("/words", h.CreateWord)
	r.GET("/words/:wordId", h.GetWord)
	r.PUT("/words/:wordId", h.UpdateWord)
	r.DELETE("/words/:wordId", h.DeleteWord)
}

// GET /words
func (h *WordHandler) ListWords(c *gin.Context) {
	words, err := h.wordService.List(c.Request.Context())
	if err != nil {
		respondWordError(c, err)
		return
	}
	response.RespondOK(c, words)
}

// POST /words
// body (json or urlencoded): { "english": "...", "german": "..." }
func (h *WordHandler) CreateWord(c *gin.Context) {
	var req types.Word
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	w, err := h.wordService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWordError(c, err)
		return
	}
	response.RespondOK(c, w)
}

// GET /words/:wordId
func (h *WordHandler) GetWord(c *gin.Context) {
	w, err := h.wordService.Get(c.Request.Context(), c.Param("wordId"))
	if err != nil {
		respondWordError(c, err)
		return
	}
	response.RespondOK(c, w)
}

// PUT /words/:wordId
// Only the supplied fields are changed.
func (h *WordHandler) UpdateWord(c *gin.Context) {
	var patch types.WordPatch
	if err := c.ShouldBind(&patch); err != nil {
		respondBindError(c, err)
		return
	}
	w, err := h.wordService.Update(c.Request.Context(), c.Param("wordId"), &patch)
	if err != nil {
		respondWordError(c, err)
		return
	}
	response.RespondOK(c, w)
}

// DELETE /words/:wordId
func (h *WordHandler) DeleteWord(c *gin.Context) {
	id := c.Param("wordId")
	if err := h.wordService.Delete(c.Request.Context(), id); err != nil {
		respondWordError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Word successfully deleted", "_id": id})
}

func respondBindError(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.RespondError(c, http.StatusRequestEntityTooLarge, "payload_too_large", errors.New("request body too large"))
		return
	}
	response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
}

func respondWordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrEnglishBlank), errors.Is(err, types.ErrGermanBlank):
		response.RespondAPIError(c, apierr.BadRequest("validation_failed", err))
	case errors.Is(err, types.ErrInvalidWordID):
		response.RespondAPIError(c, apierr.BadRequest("invalid_word_id", types.ErrInvalidWordID))
	case errors.Is(err, types.ErrWordNotFound):
		response.RespondAPIError(c, apierr.NotFound("word_not_found", err))
	default:
		response.RespondAPIError(c, err)
	}
}
