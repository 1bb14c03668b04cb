package value

import "time"

// TenderSearch — параметры одного поискового запроса к API закупок.
type TenderSearch struct {
	Query    string
	DateFrom time.Time
	DateTo   time.Time
	Region   string // пустая строка — без фильтра по региону
	Limit    int
}
