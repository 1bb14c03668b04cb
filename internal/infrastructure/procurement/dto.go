package procurement

import (
	"sort"
	"strings"
	"time"

	"tender_bot/internal/domain/entity"
)

// decodeRecords нормализует ответ поиска к списку записей. API отдаёт
// либо массив, либо объект со списком в results, либо объект, ключи
// которого — реестровые номера.
func decodeRecords(body []byte) ([]entity.RawRecord, error) {
	var asList []map[string]any
	if err := json.Unmarshal(body, &asList); err == nil {
		records := make([]entity.RawRecord, 0, len(asList))
		for _, item := range asList {
			records = append(records, entity.RawRecord(item))
		}
		return records, nil
	}

	var asObject map[string]any
	if err := json.Unmarshal(body, &asObject); err != nil {
		return nil, err
	}

	if wrapped := entity.RawRecord(asObject).Records("results", "result", "Записи"); wrapped != nil {
		return wrapped, nil
	}

	// Объект вида {"<регномер>": {...}, ...}: ключ переносим в запись.
	keys := make([]string, 0, len(asObject))
	for key := range asObject {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var records []entity.RawRecord
	for _, key := range keys {
		inner, ok := asObject[key].(map[string]any)
		if !ok {
			continue
		}
		record := entity.RawRecord(inner)
		if record.String("РегНомер", "id") == "" {
			record["РегНомер"] = key
		}
		records = append(records, record)
	}

	return records, nil
}

//nolint:gochecknoglobals
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
}

func parseDate(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return fallback
}

// toHistoricalTender переводит сырую запись поиска в доменную сущность.
// Неразобранная дата публикации заменяется на дату запроса, чтобы запись
// не выпадала из временного окна.
func toHistoricalTender(record entity.RawRecord, fallbackDate time.Time) entity.HistoricalTender {
	name := record.String("Наименование", "name")

	tender := entity.HistoricalTender{
		ID:              record.String("РегНомер", "id"),
		Name:            name,
		Subject:         name,
		Region:          record.String("Регион", "region"),
		PublicationDate: parseDate(record.String("ДатаПубл", "publication_date"), fallbackDate),
		FinalPrice:      record.Float("ЦенаКонтракта", "final_price"),
		ParticipantsCount: record.Int(
			"КолУчастников", "participants_count"),
		Status: entity.ParseTenderStatus(record.String("Статус", "status")),
	}

	if nmck := record.Float("НМЦК", "nmck"); nmck != nil {
		tender.NMCK = *nmck
	}

	// Победитель приходит либо объектом, либо строкой с названием.
	if winner := record.Record("Победитель", "winner"); winner != nil {
		if name := winner.String("Наименование", "name"); name != "" {
			tender.WinnerName = &name
		}
		if inn := winner.String("ИНН", "inn"); inn != "" {
			tender.WinnerINN = &inn
		}
	} else if name := record.String("Победитель", "winner"); name != "" {
		tender.WinnerName = &name
	}

	if tender.NMCK > 0 && tender.FinalPrice != nil {
		reduction := (tender.NMCK - *tender.FinalPrice) / tender.NMCK * 100
		tender.PriceReductionPercent = &reduction
	}

	return tender
}
