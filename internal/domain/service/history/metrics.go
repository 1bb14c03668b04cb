package history

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tender_history_analyses_total",
		Help: "Завершённые анализы истории тендеров по результату.",
	}, []string{"result"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tender_history_cache_hits_total",
		Help: "Результаты анализа, отданные из TTL-кэша.",
	})

	searchQueryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tender_history_search_query_failures_total",
		Help: "Поисковые запросы, завершившиеся ошибкой и пропущенные.",
	})
)
