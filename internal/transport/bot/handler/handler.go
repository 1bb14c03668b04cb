package handler

import (
	"context"

	"tender_bot/internal/domain/entity"
)

// HistoryAnalyzer — анализ истории похожих тендеров по карточке закупки.
type HistoryAnalyzer interface {
	AnalyzeTenderHistory(ctx context.Context, doc entity.TenderDocument) (*entity.AnalysisResult, error)
}

// TenderProvider отдаёт карточку тендера по реестровому номеру.
type TenderProvider interface {
	TenderByRegNumber(ctx context.Context, regNumber string) (entity.TenderDocument, error)
}

// ContractsProvider — история побед по ИНН и поиск тендеров по словам.
type ContractsProvider interface {
	ContractsByINN(ctx context.Context, inn string, page int) ([]entity.Contract, error)
	TendersByKeywords(ctx context.Context, keywords string, page int) ([]entity.Contract, error)
}

type Handler struct {
	analyzer  HistoryAnalyzer
	tenders   TenderProvider
	contracts ContractsProvider
}

func New(analyzer HistoryAnalyzer, tenders TenderProvider, contracts ContractsProvider) *Handler {
	return &Handler{
		analyzer:  analyzer,
		tenders:   tenders,
		contracts: contracts,
	}
}
