package history_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tender_bot/internal/domain/entity"
	"tender_bot/internal/domain/service/history"
)

func TestExtractPositions(t *testing.T) {
	t.Run("russian layout", func(t *testing.T) {
		rq := require.New(t)

		doc := entity.TenderDocument{
			"Позиции": []any{
				map[string]any{
					"Название":   "Цемент М500",
					"Количество": 100.0,
					"Единица":    "т",
					"Цена":       5000.0,
					"Сумма":      500000.0,
				},
			},
		}

		positions := history.ExtractPositions(doc)
		rq.Len(positions, 1)
		rq.Equal("Цемент М500", positions[0].Name)
		rq.NotNil(positions[0].Quantity)
		rq.Equal(100.0, *positions[0].Quantity)
		rq.NotNil(positions[0].Unit)
		rq.Equal("т", *positions[0].Unit)
		rq.NotNil(positions[0].PricePerUnit)
		rq.Equal(5000.0, *positions[0].PricePerUnit)
		rq.NotNil(positions[0].TotalPrice)
		rq.Equal(500000.0, *positions[0].TotalPrice)
	})

	t.Run("english layout", func(t *testing.T) {
		rq := require.New(t)

		doc := entity.TenderDocument{
			"products": []any{
				map[string]any{"name": "Бумага офисная", "quantity": 50.0},
				map[string]any{"name": "Картридж", "total": 12000.0},
			},
		}

		positions := history.ExtractPositions(doc)
		rq.Len(positions, 2)
		rq.Equal("Бумага офисная", positions[0].Name)
		rq.Nil(positions[0].Unit)
		rq.Nil(positions[0].PricePerUnit)
		rq.Equal("Картридж", positions[1].Name)
		rq.NotNil(positions[1].TotalPrice)
		rq.Equal(12000.0, *positions[1].TotalPrice)
	})

	t.Run("nameless records skipped", func(t *testing.T) {
		rq := require.New(t)

		doc := entity.TenderDocument{
			"items": []any{
				map[string]any{"quantity": 10.0},
				map[string]any{"name": "Щебень", "name_extra": "игнорируется"},
			},
		}

		positions := history.ExtractPositions(doc)
		rq.Len(positions, 1)
		rq.Equal("Щебень", positions[0].Name)
	})

	t.Run("fallback to subject", func(t *testing.T) {
		rq := require.New(t)

		doc := entity.TenderDocument{
			"Предмет": "Поставка строительных материалов",
		}

		positions := history.ExtractPositions(doc)
		rq.Len(positions, 1)
		rq.Equal("Поставка строительных материалов", positions[0].Name)
		rq.Nil(positions[0].Quantity)
	})

	t.Run("empty document", func(t *testing.T) {
		rq := require.New(t)

		rq.Empty(history.ExtractPositions(entity.TenderDocument{}))
	})
}
