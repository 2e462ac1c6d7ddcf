package handlers

import (
	"net/http"
	response "portal_electro/internal/adapter/http/dto/response"
	"portal_electro/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// ListStages returns the seven-stage registry in order.
func ListStages(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStages(entities.Stages()))
}
