package history_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tender_bot/internal/domain/entity"
	"tender_bot/internal/domain/service/history"
)

func TestGenerateQueries(t *testing.T) {
	unit := "т"

	tests := []struct {
		name      string
		positions []entity.TenderPosition
		want      []string
	}{
		{
			name:      "no positions",
			positions: nil,
			want:      nil,
		},
		{
			name: "single word gives no base queries",
			positions: []entity.TenderPosition{
				{Name: "Цемент"},
			},
			want: nil,
		},
		{
			name: "single word with unit",
			positions: []entity.TenderPosition{
				{Name: "Цемент", Unit: &unit},
			},
			want: []string{"Цемент т"},
		},
		{
			name: "digits stripped into separate variant",
			positions: []entity.TenderPosition{
				{Name: "Кабель ВВГ 3 отрезка"},
			},
			want: []string{
				"Кабель ВВГ 3 отрезка",
				"Кабель ВВГ отрезка",
				"Кабель ВВГ 3",
			},
		},
		{
			name: "long name truncated to three words",
			positions: []entity.TenderPosition{
				{Name: "Поставка офисной бумаги формата А4"},
			},
			want: []string{
				"Поставка офисной бумаги формата А4",
				"Поставка офисной бумаги",
			},
		},
		{
			name: "punctuation normalized and duplicates collapsed",
			positions: []entity.TenderPosition{
				{Name: "Цемент, М500!"},
				{Name: "Цемент М500"},
			},
			want: []string{
				"Цемент М500",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			got := history.GenerateQueries(tt.positions)
			if len(tt.want) == 0 {
				rq.Empty(got)
				return
			}
			rq.Equal(tt.want, got)
		})
	}
}
