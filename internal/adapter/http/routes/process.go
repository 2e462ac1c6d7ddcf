package routes

import (
	"portal_electro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStages       = "/stages"
	PathProcesses    = "/processes"
	PathProcessViews = "/process-views"
	PathMaterials    = "/materials"
)

func addProcessRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET(PathStages, handlers.ListStages)

	processes := rg.Group(PathProcesses)
	{
		processes.GET("", h.Processes.ListProcesses)
		processes.POST("", h.Processes.CreateProcess)
	}

	views := rg.Group(PathProcessViews)
	{
		views.POST("", h.Views.OpenView)
		views.GET("/:view_id", h.Views.GetView)
		views.DELETE("/:view_id", h.Views.CloseView)
		views.PATCH("/:view_id/process", h.Views.CommitEdit)

		views.POST("/:view_id/materials", h.Views.AddMaterial)
		views.PUT("/:view_id/materials/:material_id", h.Views.UpdateMaterial)
		views.POST("/:view_id/materials/:material_id/removal", h.Views.RequestMaterialRemoval)

		views.POST("/:view_id/notes", h.Views.AddNote)
		views.POST("/:view_id/notes/:note_id/removal", h.Views.RequestNoteRemoval)

		views.POST("/:view_id/alerts", h.Views.CreateAlert)
		views.PATCH("/:view_id/alerts/:alert_id/resolve", h.Views.ResolveAlert)
		views.POST("/:view_id/alerts/:alert_id/removal", h.Views.RequestAlertRemoval)

		views.POST("/:view_id/confirmations/:token", h.Views.Confirm)
		views.DELETE("/:view_id/confirmations/:token", h.Views.Cancel)

		views.GET("/:view_id/report", h.Views.GetReport)
		views.PUT("/:view_id/report", h.Views.ReplaceReport)
		views.PATCH("/:view_id/report/flags/:flag", h.Views.ToggleReportFlag)
		views.POST("/:view_id/report/save", h.Views.SaveReport)

		views.PUT("/:view_id/signature", h.Views.AttachSignature)
	}

	rg.GET(PathMaterials+"/search", h.Materials.SearchMaterials)
}
