package history_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tender_bot/internal/domain"
	"tender_bot/internal/domain/entity"
	"tender_bot/internal/domain/service/history"
	"tender_bot/internal/domain/value"
	"tender_bot/pkg/errcodes"
)

type fakeSearch struct {
	mu      sync.Mutex
	calls   int
	results []entity.HistoricalTender
	err     error
}

func (f *fakeSearch) SearchTenders(_ context.Context, _ value.TenderSearch) ([]entity.HistoricalTender, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeSearch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeRenderer struct {
	chart    []byte
	chartErr error
}

func (f *fakeRenderer) Report(_ entity.TenderSummary, _ []entity.HistoricalTender, _ entity.PriceAnalysis) string {
	return "отчёт"
}

func (f *fakeRenderer) PriceChart(_ []entity.HistoricalTender, _ float64) ([]byte, error) {
	if f.chartErr != nil {
		return nil, f.chartErr
	}
	return f.chart, nil
}

func testDocument(regNumber string) entity.TenderDocument {
	return entity.TenderDocument{
		"РегНомер": regNumber,
		"Предмет":  "Поставка цемента навалом",
		"НМЦК":     1_000_000.0,
	}
}

func datedTender(id string, price float64, date time.Time) entity.HistoricalTender {
	t := completedTender(id, price)
	t.PublicationDate = date
	return t
}

func TestAnalyzeTenderHistory(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, -1, 0)

	newService := func(search *fakeSearch, renderer *fakeRenderer) *history.Service {
		return history.NewService(search, renderer).WithClock(func() time.Time { return now })
	}

	t.Run("no positions", func(t *testing.T) {
		rq := require.New(t)

		search := &fakeSearch{}
		svc := newService(search, &fakeRenderer{})

		result, err := svc.AnalyzeTenderHistory(context.Background(), entity.TenderDocument{})
		rq.Nil(result)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.NoPositionsFound, code)
		rq.Zero(search.callCount())
	})

	t.Run("search completely unavailable", func(t *testing.T) {
		rq := require.New(t)

		search := &fakeSearch{err: errors.New("connection refused")}
		svc := newService(search, &fakeRenderer{})

		result, err := svc.AnalyzeTenderHistory(context.Background(), testDocument("1000000000000000001"))
		rq.Nil(result)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.SearchUnavailable, code)
	})

	t.Run("empty historical set degrades to report without chart", func(t *testing.T) {
		rq := require.New(t)

		search := &fakeSearch{}
		svc := newService(search, &fakeRenderer{chart: []byte("png")})

		result, err := svc.AnalyzeTenderHistory(context.Background(), testDocument("1000000000000000002"))
		rq.NoError(err)
		rq.NotNil(result)
		rq.Equal("отчёт", result.Report)
		rq.Nil(result.Chart)
		rq.Zero(result.TotalFound)
		rq.False(result.PriceAnalysis.Sufficient())
	})

	t.Run("price window and dedup", func(t *testing.T) {
		rq := require.New(t)

		noID := datedTender("", 800_000, recent)
		noPrice := entity.HistoricalTender{ID: "f", Status: entity.StatusFailed, PublicationDate: recent}

		search := &fakeSearch{results: []entity.HistoricalTender{
			datedTender("a", 700_000, recent),   // нижняя граница окна ±30%
			datedTender("b", 1_300_000, recent), // верхняя граница
			datedTender("c", 650_000, recent),   // ниже окна
			datedTender("d", 1_350_000, recent), // выше окна
			datedTender("a", 700_000, recent),   // дубликат по номеру
			datedTender("e", 900_000, now.AddDate(-2, 0, 0)), // за пределами 12 месяцев
			noID,
			noPrice, // без сопоставимой цены окно проходит
		}}
		svc := newService(search, &fakeRenderer{chart: []byte("png")})

		result, err := svc.AnalyzeTenderHistory(context.Background(), testDocument("1000000000000000003"))
		rq.NoError(err)
		rq.Equal(3, result.TotalFound)

		ids := make([]string, 0, len(result.HistoricalTenders))
		for _, tender := range result.HistoricalTenders {
			ids = append(ids, tender.ID)
		}
		rq.ElementsMatch([]string{"a", "b", "f"}, ids)
		rq.Equal([]byte("png"), result.Chart)
	})

	t.Run("chart failure is non-fatal", func(t *testing.T) {
		rq := require.New(t)

		search := &fakeSearch{results: []entity.HistoricalTender{
			datedTender("a", 900_000, recent),
		}}
		svc := newService(search, &fakeRenderer{chartErr: errors.New("render failed")})

		result, err := svc.AnalyzeTenderHistory(context.Background(), testDocument("1000000000000000004"))
		rq.NoError(err)
		rq.Nil(result.Chart)
		rq.Equal("отчёт", result.Report)
		rq.Equal(1, result.TotalFound)
	})

	t.Run("repeated analysis served from cache", func(t *testing.T) {
		rq := require.New(t)

		search := &fakeSearch{results: []entity.HistoricalTender{
			datedTender("a", 900_000, recent),
		}}
		svc := newService(search, &fakeRenderer{})
		doc := testDocument("1000000000000000005")

		first, err := svc.AnalyzeTenderHistory(context.Background(), doc)
		rq.NoError(err)

		callsAfterFirst := search.callCount()
		rq.Positive(callsAfterFirst)

		second, err := svc.AnalyzeTenderHistory(context.Background(), doc)
		rq.NoError(err)
		rq.Equal(callsAfterFirst, search.callCount())
		rq.Same(first, second)
	})
}
