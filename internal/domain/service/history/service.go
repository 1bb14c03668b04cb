package history

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"tender_bot/internal/domain"
	"tender_bot/internal/domain/entity"
	"tender_bot/internal/domain/value"
	"tender_bot/pkg/errcodes"
	"tender_bot/pkg/logx"
)

const (
	defaultLookback      = 365 * 24 * time.Hour
	defaultPriceWindow   = 0.3
	defaultMaxQueries    = 5
	defaultSearchLimit   = 50
	defaultMaxConcurrent = 3
	defaultResultTTL     = 15 * time.Minute
)

type SearchClient interface {
	SearchTenders(ctx context.Context, search value.TenderSearch) ([]entity.HistoricalTender, error)
}

type Renderer interface {
	Report(current entity.TenderSummary, tenders []entity.HistoricalTender, analysis entity.PriceAnalysis) string
	PriceChart(tenders []entity.HistoricalTender, currentPrice float64) ([]byte, error)
}

// Service — оркестратор анализа истории похожих тендеров:
// позиции → запросы → поиск → статистика → отчёт и график.
type Service struct {
	search   SearchClient
	renderer Renderer

	lookback      time.Duration
	priceWindow   float64
	maxQueries    int
	searchLimit   int
	maxConcurrent int

	results *cache.Cache
	group   singleflight.Group
	now     func() time.Time
}

func NewService(search SearchClient, renderer Renderer) *Service {
	return &Service{
		search:        search,
		renderer:      renderer,
		lookback:      defaultLookback,
		priceWindow:   defaultPriceWindow,
		maxQueries:    defaultMaxQueries,
		searchLimit:   defaultSearchLimit,
		maxConcurrent: defaultMaxConcurrent,
		results:       cache.New(defaultResultTTL, defaultResultTTL),
		now:           time.Now,
	}
}

func (s *Service) WithLookback(lookback time.Duration) *Service {
	if lookback > 0 {
		s.lookback = lookback
	}
	return s
}

// WithPriceWindow задаёт ширину ценового окна в долях текущей цены
// (0.3 — окно ±30%).
func (s *Service) WithPriceWindow(window float64) *Service {
	if window >= 0 && window <= 1 {
		s.priceWindow = window
	}
	return s
}

func (s *Service) WithLimits(maxQueries, searchLimit, maxConcurrent int) *Service {
	if maxQueries > 0 {
		s.maxQueries = maxQueries
	}
	if searchLimit > 0 {
		s.searchLimit = searchLimit
	}
	if maxConcurrent > 0 {
		s.maxConcurrent = maxConcurrent
	}
	return s
}

func (s *Service) WithCacheTTL(ttl time.Duration) *Service {
	if ttl > 0 {
		s.results = cache.New(ttl, ttl)
	}
	return s
}

// WithClock подменяет источник времени (для тестов).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// AnalyzeTenderHistory выполняет полный цикл анализа. Отсутствие позиций и
// полная недоступность поиска — ошибки; ноль найденных похожих тендеров —
// успешный деградированный результат без графика.
func (s *Service) AnalyzeTenderHistory(ctx context.Context, doc entity.TenderDocument) (*entity.AnalysisResult, error) {
	logger(ctx).Info("tender history analysis started")

	positions := ExtractPositions(doc)
	if len(positions) == 0 {
		analysesTotal.WithLabelValues("error").Inc()
		return nil, domain.NewError(errcodes.NoPositionsFound, "Не удалось извлечь позиции тендера")
	}

	queries := GenerateQueries(positions)
	if len(queries) == 0 {
		analysesTotal.WithLabelValues("error").Inc()
		return nil, domain.NewError(errcodes.NoPositionsFound, "Не удалось сгенерировать поисковые запросы")
	}

	if len(queries) > s.maxQueries {
		queries = queries[:s.maxQueries]
	}

	summary := entity.SummaryFromDocument(doc)
	key := s.cacheKey(summary, queries)

	if cached, found := s.results.Get(key); found {
		cacheHits.Inc()
		logger(ctx).Debug("analysis served from cache", "key", key)
		return cached.(*entity.AnalysisResult), nil
	}

	// Повторные запросы по тому же тендеру ждут уже запущенный анализ.
	result, err, _ := s.group.Do(key, func() (any, error) {
		analysisResult, err := s.analyze(ctx, summary, queries)
		if err != nil {
			return nil, err
		}

		s.results.Set(key, analysisResult, cache.DefaultExpiration)
		return analysisResult, nil
	})
	if err != nil {
		analysesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	analysesTotal.WithLabelValues("ok").Inc()
	return result.(*entity.AnalysisResult), nil
}

func (s *Service) analyze(ctx context.Context, summary entity.TenderSummary, queries []string) (*entity.AnalysisResult, error) {
	tenders, err := s.searchSimilar(ctx, summary, queries)
	if err != nil {
		return nil, err
	}

	logger(ctx).Info("similar tenders found", "count", len(tenders))

	analysis := AnalyzePriceDynamics(tenders, summary.NMCK)
	report := s.renderer.Report(summary, tenders, analysis)

	var chartPNG []byte
	if len(tenders) > 0 && summary.NMCK > 0 {
		chartPNG, err = s.renderer.PriceChart(tenders, summary.NMCK)
		if err != nil {
			// Отчёт ценнее графика: деградируем до «без графика».
			logger(ctx).Warn("chart rendering failed, sending report without chart", logx.Error(err))
			chartPNG = nil
		}
	}

	return &entity.AnalysisResult{
		Report:            report,
		Chart:             chartPNG,
		HistoricalTenders: tenders,
		PriceAnalysis:     analysis,
		TotalFound:        len(tenders),
	}, nil
}

func (s *Service) searchSimilar(ctx context.Context, summary entity.TenderSummary, queries []string) ([]entity.HistoricalTender, error) {
	dateTo := s.now()
	dateFrom := dateTo.Add(-s.lookback)

	var (
		mu       sync.Mutex
		merged   []entity.HistoricalTender
		failures int
	)

	g := errgroup.Group{}
	g.SetLimit(s.maxConcurrent)

	for _, query := range queries {
		g.Go(func() error {
			found, err := s.search.SearchTenders(ctx, value.TenderSearch{
				Query:    query,
				DateFrom: dateFrom,
				DateTo:   dateTo,
				Region:   summary.Region,
				Limit:    s.searchLimit,
			})
			if err != nil {
				searchQueryFailures.Inc()
				logger(ctx).Error("search query failed, skipping", "query", query, logx.Error(err))

				mu.Lock()
				failures++
				mu.Unlock()
				return nil
			}

			mu.Lock()
			merged = append(merged, found...)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait() // воркеры ошибок не возвращают

	if failures == len(queries) {
		return nil, domain.NewError(errcodes.SearchUnavailable, "Сервис поиска тендеров недоступен, попробуйте позже")
	}

	filtered := s.filterTenders(merged, summary.NMCK, dateFrom, dateTo)

	// Дедупликация по реестровому номеру, первое вхождение выигрывает.
	filtered = lo.Filter(filtered, func(t entity.HistoricalTender, _ int) bool {
		return t.ID != ""
	})
	return lo.UniqBy(filtered, func(t entity.HistoricalTender) string {
		return t.ID
	}), nil
}

// filterTenders применяет временное окно и ценовое окно ±priceWindow от
// текущей цены. Тендеры без сопоставимой цены окно проходят.
func (s *Service) filterTenders(tenders []entity.HistoricalTender, currentPrice float64, dateFrom, dateTo time.Time) []entity.HistoricalTender {
	minPrice := currentPrice * (1 - s.priceWindow)
	maxPrice := currentPrice * (1 + s.priceWindow)

	return lo.Filter(tenders, func(t entity.HistoricalTender, _ int) bool {
		if t.PublicationDate.Before(dateFrom) || t.PublicationDate.After(dateTo) {
			return false
		}

		if currentPrice > 0 {
			if price := t.ComparablePrice(); price > 0 {
				if price < minPrice || price > maxPrice {
					return false
				}
			}
		}

		return true
	})
}

func (s *Service) cacheKey(summary entity.TenderSummary, queries []string) string {
	if summary.RegNumber != "" {
		return "regn:" + summary.RegNumber
	}
	return "q:" + strings.Join(queries, "|")
}
