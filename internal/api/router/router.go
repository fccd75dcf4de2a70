package router

import (
	"github.com/wb-go/wbf/ginext"

	appointmenthandler "github.com/hduce/appointment-notify/internal/api/handlers/appointment"
	notificationhandler "github.com/hduce/appointment-notify/internal/api/handlers/notification"
	"github.com/hduce/appointment-notify/internal/middlewares"
)

// NewNotification builds the notification service router.
func NewNotification(handler *notificationhandler.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/notify")
	{
		api.POST("/email", handler.SendEmail)
		api.POST("/sms", handler.SendSMS)
		api.POST("/send", handler.Send)
		api.POST("/appointment/reminder", handler.SendReminder)
		api.GET("/", handler.GetAll)
		api.GET("/user/:user_id", handler.GetByUser)
		api.GET("/:id/status", handler.GetStatus)
	}

	return e
}

// NewAppointment builds the appointment service router.
func NewAppointment(handler *appointmenthandler.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/appointments")
	{
		api.POST("/", handler.Create)
		api.GET("/:id", handler.Get)
	}

	return e
}
