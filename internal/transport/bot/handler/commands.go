package handler

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/rs/xid"

	"tender_bot/internal/domain"
	"tender_bot/internal/domain/entity"
	"tender_bot/internal/infrastructure/procurement"
	"tender_bot/internal/transport/bot/view"
	"tender_bot/pkg/contextx"
	"tender_bot/pkg/logx"
)

// maxListedContracts — сколько записей показываем в ответе /history.
const maxListedContracts = 5

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnHelp(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.HelpMessage)
}

// OnHistory — /history <ИНН или ключевые слова>. 10–12 цифр трактуем как ИНН
// и показываем контракты победителя, иначе ищем тендеры по словам.
func (h *Handler) OnHistory(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.HistoryUsage)
	}

	arg := strings.TrimSpace(strings.Join(parts[1:], " "))

	if err := h.send(ctx, msg.Chat.ID, view.HistoryInProgress); err != nil {
		return err
	}

	reqCtx := requestContext(ctx, msg.From)

	if procurement.ValidINN(arg) {
		return h.historyByINN(ctx, reqCtx, msg.Chat.ID, arg)
	}
	return h.historyByKeywords(ctx, reqCtx, msg.Chat.ID, arg)
}

func (h *Handler) historyByINN(ctx *th.Context, reqCtx context.Context, chatID int64, inn string) error {
	contracts, err := h.contracts.ContractsByINN(reqCtx, inn, 1)
	if err != nil {
		logger(reqCtx).Error("contracts by inn failed", logx.Error(err))
		return h.send(ctx, chatID, "❌ "+domain.UserMessage(err, view.HistoryFailed))
	}

	if len(contracts) == 0 {
		return h.send(ctx, chatID, view.NoContractsByINN)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(view.ContractsByINNHeader, inn, min(len(contracts), maxListedContracts)))

	for i, contract := range contracts {
		if i >= maxListedContracts {
			break
		}
		writeContractEntry(&sb, i+1, contract)
	}

	return h.sendHTML(ctx, chatID, sb.String())
}

func (h *Handler) historyByKeywords(ctx *th.Context, reqCtx context.Context, chatID int64, keywords string) error {
	tenders, err := h.contracts.TendersByKeywords(reqCtx, keywords, 1)
	if err != nil {
		logger(reqCtx).Error("tenders by keywords failed", logx.Error(err))
		return h.send(ctx, chatID, "❌ "+domain.UserMessage(err, view.HistoryFailed))
	}

	if len(tenders) == 0 {
		return h.send(ctx, chatID, view.NoTendersByKeywords)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(view.TendersHeader, keywords, min(len(tenders), maxListedContracts)))

	for i, tender := range tenders {
		if i >= maxListedContracts {
			break
		}
		writeContractEntry(&sb, i+1, tender)
	}

	return h.sendHTML(ctx, chatID, sb.String())
}

// OnAnalyze обрабатывает произвольное сообщение: ищет в нём реестровый номер,
// получает карточку тендера и запускает анализ истории похожих закупок.
func (h *Handler) OnAnalyze(ctx *th.Context, msg telego.Message) error {
	regNumber, err := procurement.ExtractRegNumber(msg.Text)
	if err != nil {
		return h.send(ctx, msg.Chat.ID, "❌ "+domain.UserMessage(err, view.AnalyzeFailed))
	}

	if err := h.send(ctx, msg.Chat.ID, view.AnalyzeInProgress); err != nil {
		return err
	}

	reqCtx := requestContext(ctx, msg.From)

	doc, err := h.tenders.TenderByRegNumber(reqCtx, regNumber)
	if err != nil {
		logger(reqCtx).Error("tender fetch failed", "reg_number", regNumber, logx.Error(err))
		return h.send(ctx, msg.Chat.ID, "❌ "+domain.UserMessage(err, view.TenderFetchFailed))
	}

	result, err := h.analyzer.AnalyzeTenderHistory(reqCtx, doc)
	if err != nil {
		logger(reqCtx).Error("tender history analysis failed", "reg_number", regNumber, logx.Error(err))
		return h.send(ctx, msg.Chat.ID, "❌ "+domain.UserMessage(err, view.AnalyzeFailed))
	}

	if err := h.sendHTML(ctx, msg.Chat.ID, result.Report); err != nil {
		return err
	}

	if len(result.Chart) > 0 {
		photo := tu.Photo(
			tu.ID(msg.Chat.ID),
			tu.File(tu.NameReader(bytes.NewReader(result.Chart), "price_dynamics.png")),
		).WithCaption(view.ChartCaption)

		if _, err := ctx.Bot().SendPhoto(ctx, photo); err != nil {
			logger(reqCtx).Error("chart send failed", logx.Error(err))
		}
	}

	return nil
}

func writeContractEntry(sb *strings.Builder, num int, contract entity.Contract) {
	name := contract.Name
	if name == "" {
		name = "Без названия"
	}

	sb.WriteString(fmt.Sprintf("\n%d. %s\n", num, name))
	if contract.Price != nil {
		sb.WriteString(fmt.Sprintf("   💰 %.2f ₽\n", *contract.Price))
	}
	if contract.Date != "" {
		sb.WriteString(fmt.Sprintf("   📅 %s\n", contract.Date))
	}
	if contract.Customer != "" {
		sb.WriteString(fmt.Sprintf("   🏛 %s\n", contract.Customer))
	}
	if contract.Region != "" {
		sb.WriteString(fmt.Sprintf("   📍 %s\n", contract.Region))
	}
	if contract.Link != "" {
		sb.WriteString(fmt.Sprintf("   🔗 %s\n", contract.Link))
	}
}

// requestContext кладёт в контекст идентификаторы трассировки и
// пользователя и логгер, обогащённый этими полями, — сервис и
// HTTP-транспорт достают его через contextx.
func requestContext(ctx context.Context, from *telego.User) context.Context {
	traceID := contextx.TraceID(xid.New().String())
	ctx = contextx.WithTraceID(ctx, traceID)

	log := logger(ctx).With(logx.Stringer(logx.FieldTraceID, traceID))

	if from != nil {
		userID := contextx.UserID(strconv.FormatInt(from.ID, 10))
		ctx = contextx.WithUserID(ctx, userID)
		log = log.With(logx.Stringer(logx.FieldUserID, userID))
	}

	return contextx.WithLogger(ctx, log)
}

// Вспомогательные методы

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	return err
}
