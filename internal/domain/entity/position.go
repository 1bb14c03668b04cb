package entity

// TenderPosition — одна позиция (лот/строка спецификации) тендера.
// Числовые поля независимо опциональны: отсутствующее значение не
// восстанавливается из соседних полей.
type TenderPosition struct {
	Name         string
	Quantity     *float64
	Unit         *string
	PricePerUnit *float64
	TotalPrice   *float64
}
