package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"tender_bot/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	group := bh.Group(th.AnyMessage())
	group.Use(middleware.AllowedOnly(adminID))

	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnHelp, th.CommandEqual("help"))
	group.HandleMessage(h.OnHistory, th.CommandEqual("history"))

	// Любое прочее сообщение — попытка анализа тендера по номеру.
	group.HandleMessage(h.OnAnalyze, th.AnyMessageWithText(), th.Not(th.AnyCommand()))
}
