package history

import (
	"tender_bot/internal/domain/entity"
)

// ExtractPositions извлекает позиции из карточки тендера.
// Карточки приходят в разных раскладках: позиции лежат в «Позиции»,
// products или items, поля позиций дублируются на двух языках.
// Безымянные записи пропускаются, отсутствующие числа остаются nil.
func ExtractPositions(doc entity.TenderDocument) []entity.TenderPosition {
	var positions []entity.TenderPosition

	for _, product := range doc.Records("Позиции", "products", "items") {
		name := product.String("Название", "name")
		if name == "" {
			continue
		}

		positions = append(positions, entity.TenderPosition{
			Name:         name,
			Quantity:     product.Float("Количество", "quantity"),
			Unit:         optionalString(product.String("Единица", "unit")),
			PricePerUnit: product.Float("Цена", "price"),
			TotalPrice:   product.Float("Сумма", "total_price", "total"),
		})
	}

	// Позиций нет — анализируем по предмету закупки целиком.
	if len(positions) == 0 {
		if subject := doc.String("Предмет", "subject"); subject != "" {
			positions = append(positions, entity.TenderPosition{Name: subject})
		}
	}

	return positions
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
