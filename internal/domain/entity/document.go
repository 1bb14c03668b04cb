package entity

import (
	"strconv"
	"strings"
)

// RawRecord — слабо типизированная запись из ответа внешнего API.
// Карточки тендеров приходят в нескольких вариантах раскладки с русскими
// либо английскими ключами; методы ниже выполняют нормализацию на границе:
// первый присутствующий ключ выигрывает.
type RawRecord map[string]any

// TenderDocument — карточка анализируемого тендера в сыром виде.
type TenderDocument = RawRecord

func (r RawRecord) String(keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		}
	}
	return ""
}

func (r RawRecord) Float(keys ...string) *float64 {
	for _, key := range keys {
		switch v := r[key].(type) {
		case float64:
			return &v
		case int:
			f := float64(v)
			return &f
		case int64:
			f := float64(v)
			return &f
		case string:
			// TenderGuru отдаёт цены строками, иногда с пробелами и запятой.
			s := strings.ReplaceAll(strings.ReplaceAll(v, " ", ""), ",", ".")
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

func (r RawRecord) Int(keys ...string) *int {
	if f := r.Float(keys...); f != nil {
		n := int(*f)
		return &n
	}
	return nil
}

func (r RawRecord) Record(keys ...string) RawRecord {
	for _, key := range keys {
		if m, ok := r[key].(map[string]any); ok {
			return RawRecord(m)
		}
	}
	return nil
}

func (r RawRecord) Records(keys ...string) []RawRecord {
	for _, key := range keys {
		list, ok := r[key].([]any)
		if !ok || len(list) == 0 {
			continue
		}

		records := make([]RawRecord, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				records = append(records, RawRecord(m))
			}
		}
		if len(records) > 0 {
			return records
		}
	}
	return nil
}

// TenderSummary — канонические атрибуты анализируемого тендера.
type TenderSummary struct {
	RegNumber string
	Subject   string
	Region    string
	NMCK      float64
}

// SummaryFromDocument извлекает атрибуты текущего тендера из карточки.
func SummaryFromDocument(doc TenderDocument) TenderSummary {
	summary := TenderSummary{
		RegNumber: doc.String("РегНомер", "reg_number", "id"),
		Subject:   doc.String("Предмет", "subject"),
		Region:    doc.String("Регион", "region"),
	}

	if nmck := doc.Float("НМЦК", "nmck"); nmck != nil {
		summary.NMCK = *nmck
	}

	return summary
}
