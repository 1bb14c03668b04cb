package entity

import (
	"strings"
	"time"
)

type TenderStatus string

const (
	StatusCompleted TenderStatus = "completed"
	StatusFailed    TenderStatus = "failed"
	StatusCancelled TenderStatus = "cancelled"
	StatusUnknown   TenderStatus = "unknown"
)

// ParseTenderStatus нормализует статус из ответа поискового API.
// API отдаёт свободный текст на русском, иногда уже нормализованные
// английские значения.
func ParseTenderStatus(raw string) TenderStatus {
	switch TenderStatus(raw) {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return TenderStatus(raw)
	}

	lower := strings.ToLower(raw)

	switch {
	case strings.Contains(lower, "заверш"), strings.Contains(lower, "выполн"):
		return StatusCompleted
	case strings.Contains(lower, "отмен"), strings.Contains(lower, "отказ"):
		return StatusCancelled
	case strings.Contains(lower, "не состоял"), strings.Contains(lower, "не было"):
		return StatusFailed
	}

	return StatusUnknown
}

// HistoricalTender — завершившийся тендер, признанный сопоставимым с
// анализируемым. Живёт только в рамках одного запроса анализа.
type HistoricalTender struct {
	ID                    string
	Name                  string
	Region                string
	Subject               string
	PublicationDate       time.Time
	NMCK                  float64
	FinalPrice            *float64
	WinnerName            *string
	WinnerINN             *string
	ParticipantsCount     *int
	Status                TenderStatus
	PriceReductionPercent *float64
}

// ComparablePrice — цена, по которой тендер участвует в ценовом фильтре:
// цена контракта, при её отсутствии НМЦК.
func (t HistoricalTender) ComparablePrice() float64 {
	if t.FinalPrice != nil && *t.FinalPrice > 0 {
		return *t.FinalPrice
	}
	return t.NMCK
}
