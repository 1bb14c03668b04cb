package entity

// PriceComparison — отклонения текущей цены от опорных значений, в процентах.
type PriceComparison struct {
	VsAvg    float64
	VsMedian float64
	VsMin    float64
	VsMax    float64
}

// PriceAnalysis — агрегированная статистика цен по историческому набору.
// TotalTenders == 0 означает «недостаточно данных»: статистика не считалась,
// это деградация, а не ошибка.
type PriceAnalysis struct {
	TotalTenders int
	AvgPrice     float64
	MedianPrice  float64
	MinPrice     float64
	MaxPrice     float64
	Comparison   *PriceComparison // nil, если текущая цена неизвестна
}

// Sufficient сообщает, удалось ли посчитать статистику.
func (a PriceAnalysis) Sufficient() bool {
	return a.TotalTenders > 0
}

// AnalysisResult — итог анализа истории похожих тендеров.
type AnalysisResult struct {
	Report            string
	Chart             []byte // nil — график не построен
	HistoricalTenders []HistoricalTender
	PriceAnalysis     PriceAnalysis
	TotalFound        int
}
