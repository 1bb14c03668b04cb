package render

import (
	"bytes"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"

	"tender_bot/internal/domain"
	"tender_bot/internal/domain/entity"
	"tender_bot/pkg/errcodes"
)

// Горизонтальные линии продлеваем за крайние точки, чтобы график с одной
// точкой имел ненулевой диапазон по оси X.
const chartPadding = 15 * 24 * time.Hour

// PriceChart строит PNG: цены завершённых тендеров по датам публикации,
// линия тренда и горизонтальные уровни текущей и средней цены.
func (r *Renderer) PriceChart(tenders []entity.HistoricalTender, currentPrice float64) ([]byte, error) {
	completed := lo.Filter(tenders, func(t entity.HistoricalTender, _ int) bool {
		return t.Status == entity.StatusCompleted && t.FinalPrice != nil && *t.FinalPrice > 0
	})

	if len(completed) == 0 {
		return nil, domain.NewError(errcodes.ChartRenderingFailed, "нет точек для графика")
	}

	sort.Slice(completed, func(i, j int) bool {
		return completed[i].PublicationDate.Before(completed[j].PublicationDate)
	})

	dates := make([]time.Time, 0, len(completed))
	prices := make([]float64, 0, len(completed))
	var sum float64
	for _, t := range completed {
		dates = append(dates, t.PublicationDate)
		prices = append(prices, *t.FinalPrice)
		sum += *t.FinalPrice
	}
	avgPrice := sum / float64(len(prices))

	historical := chart.TimeSeries{
		Name: "Исторические тендеры",
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    5,
			DotColor:    chart.ColorBlue,
		},
		XValues: dates,
		YValues: prices,
	}

	lineSpan := []time.Time{
		dates[0].Add(-chartPadding),
		dates[len(dates)-1].Add(chartPadding),
	}

	series := []chart.Series{
		historical,
		horizontalLine("Текущий тендер", lineSpan, currentPrice, chart.Style{
			StrokeColor: chart.ColorGreen,
			StrokeWidth: 2,
		}),
		horizontalLine("Средняя цена", lineSpan, avgPrice, chart.Style{
			StrokeColor:     chart.ColorOrange,
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5, 5},
		}),
	}

	if len(dates) > 1 {
		series = append(series, &chart.LinearRegressionSeries{
			Name:        "Тренд",
			InnerSeries: historical,
			Style: chart.Style{
				StrokeColor:     chart.ColorRed,
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5, 5},
			},
		})
	}

	graph := chart.Chart{
		Title:  "Динамика цен по похожим тендерам",
		Width:  1200,
		Height: 800,
		XAxis: chart.XAxis{
			Name:           "Дата публикации",
			ValueFormatter: chart.TimeValueFormatterWithFormat("01.2006"),
		},
		YAxis: chart.YAxis{
			Name: "Цена контракта, ₽",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, domain.WrapError(err, errcodes.ChartRenderingFailed, "не удалось построить график")
	}

	return buf.Bytes(), nil
}

func horizontalLine(name string, span []time.Time, level float64, style chart.Style) chart.TimeSeries {
	return chart.TimeSeries{
		Name:    name,
		Style:   style,
		XValues: span,
		YValues: []float64{level, level},
	}
}
