package config

import "time"

// Damia — поисковый API закупок (карточки тендеров и полнотекстовый поиск).
type Damia struct {
	BaseURL       string        `env:"DAMIA_BASE_URL" envDefault:"https://api.damia.ru"`
	SearchBaseURL string        `env:"DAMIA_SEARCH_BASE_URL" envDefault:"https://damia.ru/api-zakupki"`
	APIKey        string        `env:"DAMIA_API_KEY,required"`
	Timeout       time.Duration `env:"DAMIA_TIMEOUT" envDefault:"15s"`
}

// TenderGuru — экспортный API контрактов (история побед по ИНН).
type TenderGuru struct {
	BaseURL string        `env:"TENDERGURU_BASE_URL" envDefault:"https://www.tenderguru.ru/api2.3/export"`
	APICode string        `env:"TENDERGURU_API_CODE,required"`
	Timeout time.Duration `env:"TENDERGURU_TIMEOUT" envDefault:"15s"`
}
