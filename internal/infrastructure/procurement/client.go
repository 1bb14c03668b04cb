package procurement

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"tender_bot/internal/config"
	"tender_bot/internal/domain"
	"tender_bot/internal/domain/entity"
	"tender_bot/internal/domain/value"
	"tender_bot/pkg/errcodes"
	"tender_bot/pkg/httpx"
	"tender_bot/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const dateLayout = "2006-01-02"

// Client — клиент поискового API закупок (DaMIA). Карточки тендеров и
// полнотекстовый поиск живут на разных базовых URL.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	searchBaseURL string
}

func NewClient(cfg config.Damia) *Client {
	transport := httpx.NewLoggingRoundTripper(
		httpx.NewAPIKeyRoundTripper(http.DefaultTransport, "key", cfg.APIKey),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
	)

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		searchBaseURL: strings.TrimRight(cfg.SearchBaseURL, "/"),
	}
}

// SearchTenders ищет похожие тендеры по текстовому запросу в заданном
// окне дат. Ответ нормализуется в доменные записи.
func (c *Client) SearchTenders(ctx context.Context, search value.TenderSearch) ([]entity.HistoricalTender, error) {
	params := url.Values{}
	params.Set("q", search.Query)
	params.Set("from", search.DateFrom.Format(dateLayout))
	params.Set("to", search.DateTo.Format(dateLayout))
	if search.Region != "" {
		params.Set("regions", search.Region)
	}
	if search.Limit > 0 {
		params.Set("limit", strconv.Itoa(search.Limit))
	}

	body, err := c.get(ctx, c.searchBaseURL+"/zsearch", params)
	if err != nil {
		return nil, fmt.Errorf("zsearch %q: %w", search.Query, err)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("decode zsearch response: %w", err)
	}

	tenders := make([]entity.HistoricalTender, 0, len(records))
	for _, record := range records {
		tenders = append(tenders, toHistoricalTender(record, search.DateTo))
	}

	return tenders, nil
}

// TenderByRegNumber возвращает карточку тендера по реестровому номеру.
// Сначала пробуем реестр закупок, затем реестр контрактов.
func (c *Client) TenderByRegNumber(ctx context.Context, regNumber string) (entity.TenderDocument, error) {
	params := url.Values{}
	params.Set("regn", regNumber)
	params.Set("actual", "1")

	doc, err := c.fetchDocument(ctx, c.baseURL+"/zakupki/zakupka", params)
	if err == nil {
		return doc, nil
	}

	params.Del("actual")
	doc, err = c.fetchDocument(ctx, c.baseURL+"/zakupki/contract", params)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.TenderNotFound,
			fmt.Sprintf("Тендер %s не найден", regNumber))
	}

	return doc, nil
}

func (c *Client) fetchDocument(ctx context.Context, endpoint string, params url.Values) (entity.TenderDocument, error) {
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if len(raw) == 0 {
		return nil, domain.NewError(errcodes.EmptyAPIResponse, "пустой ответ API")
	}

	doc := entity.TenderDocument(raw)

	// API может завернуть карточку в объект с единственным ключом —
	// реестровым номером.
	if len(raw) == 1 {
		for key, v := range raw {
			if inner, ok := v.(map[string]any); ok {
				doc = entity.TenderDocument(inner)
				if doc.String("РегНомер", "reg_number") == "" {
					doc["РегНомер"] = key
				}
			}
		}
	}

	return doc, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequest: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, domain.NewError(errcodes.EmptyAPIResponse, "пустой ответ API")
	}

	return body, nil
}

//nolint:gochecknoglobals
var regNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`zakupki\.gov\.ru/.*?(\d{19})`),
	regexp.MustCompile(`\d{19,20}`),
}

// ExtractRegNumber достаёт реестровый номер тендера из произвольного
// текста: голый 19–20-значный номер или ссылка на zakupki.gov.ru.
func ExtractRegNumber(text string) (string, error) {
	for _, pattern := range regNumberPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if len(match) > 1 {
			return match[1], nil
		}
		return match[0], nil
	}

	return "", domain.NewError(errcodes.InvalidTenderNumber,
		"Не удалось распознать номер тендера. Пришлите 19-значный номер или ссылку на zakupki.gov.ru.")
}
