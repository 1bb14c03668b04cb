package config

import "time"

// History — параметры анализа истории похожих тендеров.
type History struct {
	Lookback      time.Duration `env:"HISTORY_LOOKBACK" envDefault:"8760h"` // 12 месяцев
	PriceWindow   float64       `env:"HISTORY_PRICE_WINDOW" envDefault:"0.3" validate:"gte=0,lte=1"`
	MaxQueries    int           `env:"HISTORY_MAX_QUERIES" envDefault:"5" validate:"gt=0"`
	SearchLimit   int           `env:"HISTORY_SEARCH_LIMIT" envDefault:"50" validate:"gt=0"`
	CacheTTL      time.Duration `env:"HISTORY_CACHE_TTL" envDefault:"15m"`
	MaxConcurrent int           `env:"HISTORY_MAX_CONCURRENT" envDefault:"3" validate:"gt=0"`
}
