package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"realty_analyzer/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	// Все команды доступны только администратору
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("help"))
	adminGroup.HandleMessage(h.OnAnalyze, th.CommandEqual("analyze"))
	adminGroup.HandleMessage(h.OnSentiment, th.CommandEqual("sentiment"))
}
