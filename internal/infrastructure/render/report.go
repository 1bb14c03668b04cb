package render

import (
	"fmt"
	"sort"
	"strings"

	"tender_bot/internal/domain/entity"
)

const maxListedTenders = 10

// Renderer собирает текстовый отчёт и график по результатам анализа.
// Отчёт форматируется под Telegram (parse mode HTML).
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Report(current entity.TenderSummary, tenders []entity.HistoricalTender, analysis entity.PriceAnalysis) string {
	if len(tenders) == 0 {
		return "📊 <b>История похожих тендеров не найдена</b>\n\n" +
			"Похожие тендеры за последние 12 месяцев не обнаружены."
	}

	// Свежие сначала; входной срез не трогаем.
	sorted := make([]entity.HistoricalTender, len(tenders))
	copy(sorted, tenders)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PublicationDate.After(sorted[j].PublicationDate)
	})

	var sb strings.Builder

	sb.WriteString("📈 <b>История похожих тендеров</b>\n\n")
	sb.WriteString("🔍 <b>Анализируемый тендер:</b>\n")
	sb.WriteString(fmt.Sprintf("📋 %s\n", current.Subject))
	sb.WriteString(fmt.Sprintf("💰 НМЦК: %s\n\n", formatPrice(current.NMCK)))

	sb.WriteString("📊 <b>Похожие тендеры за последние 12 месяцев:</b>\n\n")

	for i, tender := range sorted {
		if i >= maxListedTenders {
			break
		}
		writeTenderEntry(&sb, i+1, tender)
	}

	if analysis.Sufficient() {
		sb.WriteString("📉 <b>Анализ цен:</b>\n")
		sb.WriteString(fmt.Sprintf("• Средняя цена: %s\n", formatPrice(analysis.AvgPrice)))
		sb.WriteString(fmt.Sprintf("• Медианная цена: %s\n", formatPrice(analysis.MedianPrice)))
		sb.WriteString(fmt.Sprintf("• Диапазон: %s — %s\n\n",
			formatPrice(analysis.MinPrice), formatPrice(analysis.MaxPrice)))
	}

	if analysis.Comparison != nil {
		sb.WriteString("📊 <b>Сравнение с текущим тендером:</b>\n")
		sb.WriteString(fmt.Sprintf("• От средней: %+.1f%%\n", analysis.Comparison.VsAvg))
		sb.WriteString(fmt.Sprintf("• От медианной: %+.1f%%\n", analysis.Comparison.VsMedian))
		sb.WriteString(fmt.Sprintf("• От минимальной: %+.1f%%\n", analysis.Comparison.VsMin))
		sb.WriteString(fmt.Sprintf("• От максимальной: %+.1f%%\n\n", analysis.Comparison.VsMax))
	}

	sb.WriteString("📌 <b>Выводы:</b>\n")
	sb.WriteString(conclusion(analysis))

	return sb.String()
}

func writeTenderEntry(sb *strings.Builder, num int, tender entity.HistoricalTender) {
	dateStr := tender.PublicationDate.Format("02.01.2006")

	var statusIcon, winnerInfo, priceInfo string

	if tender.Status == entity.StatusCompleted && tender.WinnerName != nil {
		statusIcon = "✅"
		winnerInfo = "Победа"
		if tender.ParticipantsCount != nil {
			winnerInfo = fmt.Sprintf("Победа при %d участниках", *tender.ParticipantsCount)
		}
		priceInfo = "💰 Цена: " + formatPrice(valueOrZero(tender.FinalPrice))
		if tender.PriceReductionPercent != nil {
			priceInfo += fmt.Sprintf(" (снижение %.1f%% от НМЦК)", *tender.PriceReductionPercent)
		}
	} else {
		statusIcon = "❌"
		winnerInfo = "Отменён"
		if tender.Status == entity.StatusFailed {
			winnerInfo = "Провален (не было заявок)"
		}
		priceInfo = "💰 НМЦК: " + formatPrice(tender.NMCK)
	}

	winnerName := "Неизвестно"
	if tender.WinnerName != nil {
		winnerName = *tender.WinnerName
	}

	sb.WriteString(fmt.Sprintf("%d. %s — %s\n", num, dateStr, winnerName))
	sb.WriteString(fmt.Sprintf("   %s %s\n", statusIcon, winnerInfo))
	sb.WriteString(fmt.Sprintf("   %s\n", priceInfo))
	if tender.Region != "" {
		sb.WriteString(fmt.Sprintf("   📍 Регион: %s\n", tender.Region))
	}
	sb.WriteString("\n")
}

func conclusion(analysis entity.PriceAnalysis) string {
	if !analysis.Sufficient() || analysis.Comparison == nil {
		return "📊 Недостаточно данных для анализа цен.\n"
	}

	switch vsAvg := analysis.Comparison.VsAvg; {
	case vsAvg > 20:
		return "⚠️ Цена значительно выше средней. Возможен риск отклонения заявки из-за завышения.\n"
	case vsAvg > 10:
		return "⚠️ Цена выше средней. Рекомендуется проанализировать обоснованность цены.\n"
	case vsAvg < -20:
		return "✅ Цена значительно ниже средней. Возможен риск отклонения заявки из-за занижения.\n"
	case vsAvg < -10:
		return "✅ Цена ниже средней. Хорошие шансы на победу.\n"
	default:
		return "✅ Цена в пределах среднего диапазона. Конкурентная цена.\n"
	}
}

// formatPrice — «1 234 567 ₽», разряды через неразрывный пробел не нужны,
// Telegram нормально переносит обычные.
func formatPrice(price float64) string {
	whole := fmt.Sprintf("%.0f", price)

	negative := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	result := strings.Join(parts, " ")
	if negative {
		result = "-" + result
	}
	return result + " ₽"
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
