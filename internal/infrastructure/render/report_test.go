package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tender_bot/internal/domain/entity"
	"tender_bot/internal/infrastructure/render"
)

func tender(id string, price float64, date time.Time, winner string) entity.HistoricalTender {
	reduction := 10.0
	return entity.HistoricalTender{
		ID:                    id,
		NMCK:                  price / 0.9,
		FinalPrice:            &price,
		PublicationDate:       date,
		Status:                entity.StatusCompleted,
		WinnerName:            &winner,
		PriceReductionPercent: &reduction,
	}
}

func TestReport(t *testing.T) {
	current := entity.TenderSummary{
		Subject: "Поставка цемента",
		NMCK:    1_000_000,
	}

	t.Run("empty history", func(t *testing.T) {
		rq := require.New(t)

		report := render.NewRenderer().Report(current, nil, entity.PriceAnalysis{})
		rq.Contains(report, "История похожих тендеров не найдена")
		rq.NotContains(report, "Анализ цен")
	})

	t.Run("full report", func(t *testing.T) {
		rq := require.New(t)

		date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		tenders := []entity.HistoricalTender{
			tender("1", 850_000, date, "ООО Ромашка"),
			{
				ID:              "2",
				NMCK:            900_000,
				PublicationDate: date.AddDate(0, -2, 0),
				Status:          entity.StatusFailed,
			},
		}
		analysis := entity.PriceAnalysis{
			TotalTenders: 1,
			AvgPrice:     850_000,
			MedianPrice:  850_000,
			MinPrice:     850_000,
			MaxPrice:     850_000,
			Comparison:   &entity.PriceComparison{VsAvg: 17.6, VsMedian: 17.6, VsMin: 17.6, VsMax: 17.6},
		}

		report := render.NewRenderer().Report(current, tenders, analysis)

		rq.Contains(report, "Поставка цемента")
		rq.Contains(report, "1 000 000 ₽")
		rq.Contains(report, "ООО Ромашка")
		rq.Contains(report, "15.03.2026")
		rq.Contains(report, "снижение 10.0% от НМЦК")
		rq.Contains(report, "Провален (не было заявок)")
		rq.Contains(report, "Средняя цена: 850 000 ₽")
		rq.Contains(report, "От средней: +17.6%")
		rq.Contains(report, "Цена выше средней")

		// Свежие тендеры идут первыми.
		rq.Less(strings.Index(report, "ООО Ромашка"), strings.Index(report, "Провален"))
	})

	t.Run("conclusion thresholds", func(t *testing.T) {
		tests := []struct {
			name  string
			vsAvg float64
			want  string
		}{
			{"far above", 25, "значительно выше средней"},
			{"above", 15, "выше средней"},
			{"competitive", 5, "Конкурентная цена"},
			{"below", -15, "ниже средней"},
			{"far below", -25, "значительно ниже средней"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rq := require.New(t)

				analysis := entity.PriceAnalysis{
					TotalTenders: 3,
					Comparison:   &entity.PriceComparison{VsAvg: tt.vsAvg},
				}
				date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
				report := render.NewRenderer().Report(current,
					[]entity.HistoricalTender{tender("1", 900_000, date, "ООО Ромашка")}, analysis)

				rq.Contains(report, tt.want)
			})
		}
	})

	t.Run("insufficient data conclusion", func(t *testing.T) {
		rq := require.New(t)

		date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		report := render.NewRenderer().Report(current,
			[]entity.HistoricalTender{tender("1", 900_000, date, "ООО Ромашка")},
			entity.PriceAnalysis{})

		rq.Contains(report, "Недостаточно данных для анализа цен")
	})
}

func TestPriceChart(t *testing.T) {
	t.Run("png rendered", func(t *testing.T) {
		rq := require.New(t)

		date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		tenders := []entity.HistoricalTender{
			tender("1", 850_000, date, "ООО Ромашка"),
			tender("2", 920_000, date.AddDate(0, 2, 0), "ООО Василёк"),
			tender("3", 880_000, date.AddDate(0, 4, 0), "ООО Лютик"),
		}

		png, err := render.NewRenderer().PriceChart(tenders, 1_000_000)
		rq.NoError(err)
		rq.NotEmpty(png)
		// Сигнатура PNG.
		rq.Equal([]byte{0x89, 'P', 'N', 'G'}, png[:4])
	})

	t.Run("single point", func(t *testing.T) {
		rq := require.New(t)

		date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		png, err := render.NewRenderer().PriceChart(
			[]entity.HistoricalTender{tender("1", 850_000, date, "ООО Ромашка")}, 1_000_000)
		rq.NoError(err)
		rq.NotEmpty(png)
	})

	t.Run("no completed tenders", func(t *testing.T) {
		rq := require.New(t)

		png, err := render.NewRenderer().PriceChart(
			[]entity.HistoricalTender{{ID: "1", Status: entity.StatusCancelled}}, 1_000_000)
		rq.Error(err)
		rq.Nil(png)
	})
}
