package handlers

import (
	"net/http"
	response "portal_electro/internal/adapter/http/dto/response"
	"portal_electro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MaterialSearchHandler struct {
	picker usecase.IMaterialPicker
	logger *zap.Logger
}

func NewMaterialSearchHandler(picker usecase.IMaterialPicker, logger *zap.Logger) *MaterialSearchHandler {
	return &MaterialSearchHandler{picker: picker, logger: logger}
}

// SearchMaterials filters both catalogs by the q query parameter. An empty q lists all.
func (h *MaterialSearchHandler) SearchMaterials(c *gin.Context) {
	res, err := h.picker.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialSearch(res))
}
