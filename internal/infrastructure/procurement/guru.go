package procurement

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"tender_bot/internal/config"
	"tender_bot/internal/domain"
	"tender_bot/internal/domain/entity"
	"tender_bot/pkg/errcodes"
	"tender_bot/pkg/httpx"
	"tender_bot/pkg/logx"
)

const defaultFZ = 44 // закупки по 44-ФЗ

// GuruClient — клиент экспортного API TenderGuru: контракты победителей
// по ИНН и поиск тендеров по ключевым словам.
type GuruClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewGuruClient(cfg config.TenderGuru) *GuruClient {
	transport := httpx.NewLoggingRoundTripper(
		httpx.NewAPIKeyRoundTripper(http.DefaultTransport, "api_code", cfg.APICode),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
	)

	return &GuruClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// ContractsByINN возвращает контракты, выигранные поставщиком с данным ИНН.
func (c *GuruClient) ContractsByINN(ctx context.Context, inn string, page int) ([]entity.Contract, error) {
	if !ValidINN(inn) {
		return nil, domain.NewError(errcodes.InvalidINN, "ИНН должен состоять из 10 или 12 цифр")
	}

	params := url.Values{}
	params.Set("inn", inn)
	params.Set("page", strconv.Itoa(max(page, 1)))

	return c.fetchContracts(ctx, c.baseURL+"/contracts", params)
}

// TendersByKeywords ищет активные тендеры по ключевым словам.
func (c *GuruClient) TendersByKeywords(ctx context.Context, keywords string, page int) ([]entity.Contract, error) {
	params := url.Values{}
	params.Set("kwords", keywords)
	params.Set("fz", strconv.Itoa(defaultFZ))
	params.Set("page", strconv.Itoa(max(page, 1)))

	return c.fetchContracts(ctx, c.baseURL+"/torgi", params)
}

func (c *GuruClient) fetchContracts(ctx context.Context, endpoint string, params url.Values) ([]entity.Contract, error) {
	params.Set("dtype", "json")

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

	var raw []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	contracts := make([]entity.Contract, 0, len(raw))
	for _, item := range raw {
		record := entity.RawRecord(item)
		contracts = append(contracts, entity.Contract{
			ID:          record.String("ID", "id"),
			Name:        record.String("ContractName", "TenderName", "name"),
			Price:       record.Float("Price", "price"),
			Date:        record.String("Date", "date"),
			SupplierINN: record.String("INN", "inn"),
			Supplier:    record.String("Org", "supplier"),
			Region:      record.String("Region", "region"),
			Customer:    record.String("Customer", "customer"),
			CustomerINN: record.String("CustomerINN", "customer_inn"),
			Link:        record.String("ContractLink", "TenderLink", "contract_link"),
		})
	}

	return contracts, nil
}

// ValidINN — ИНН юрлица (10 цифр) или физлица/ИП (12 цифр).
func ValidINN(inn string) bool {
	if len(inn) != 10 && len(inn) != 12 {
		return false
	}
	for _, r := range inn {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
