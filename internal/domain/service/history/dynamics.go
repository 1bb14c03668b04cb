package history

import (
	"sort"

	"github.com/samber/lo"

	"tender_bot/internal/domain/entity"
)

// AnalyzePriceDynamics считает описательную статистику цен по историческому
// набору и отклонение текущей цены от неё. В статистику попадают только
// завершённые тендеры с положительной ценой контракта. Пустой набор даёт
// sentinel-результат «недостаточно данных», а не ошибку.
func AnalyzePriceDynamics(tenders []entity.HistoricalTender, currentPrice float64) entity.PriceAnalysis {
	completed := lo.Filter(tenders, func(t entity.HistoricalTender, _ int) bool {
		return t.Status == entity.StatusCompleted && t.FinalPrice != nil && *t.FinalPrice > 0
	})

	if len(completed) == 0 {
		return entity.PriceAnalysis{}
	}

	prices := lo.Map(completed, func(t entity.HistoricalTender, _ int) float64 {
		return *t.FinalPrice
	})
	sort.Float64s(prices)

	analysis := entity.PriceAnalysis{
		TotalTenders: len(completed),
		AvgPrice:     mean(prices),
		MedianPrice:  median(prices),
		MinPrice:     prices[0],
		MaxPrice:     prices[len(prices)-1],
	}

	if currentPrice > 0 {
		analysis.Comparison = &entity.PriceComparison{
			VsAvg:    deviationPercent(currentPrice, analysis.AvgPrice),
			VsMedian: deviationPercent(currentPrice, analysis.MedianPrice),
			VsMin:    deviationPercent(currentPrice, analysis.MinPrice),
			VsMax:    deviationPercent(currentPrice, analysis.MaxPrice),
		}
	}

	return analysis
}

func mean(sorted []float64) float64 {
	var sum float64
	for _, p := range sorted {
		sum += p
	}
	return sum / float64(len(sorted))
}

// median — стандартное определение: среднее двух центральных элементов
// при чётном количестве.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func deviationPercent(current, reference float64) float64 {
	if reference <= 0 {
		return 0
	}
	return (current - reference) / reference * 100
}
