package entity

// Contract — контракт или тендер из экспортного API TenderGuru.
// Используется историей побед по ИНН и поиском по ключевым словам.
type Contract struct {
	ID          string
	Name        string
	Price       *float64
	Date        string // формат даты у API не гарантирован, храним как есть
	SupplierINN string
	Supplier    string
	Region      string
	Customer    string
	CustomerINN string
	Link        string
}
