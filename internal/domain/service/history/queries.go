package history

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"tender_bot/internal/domain/entity"
)

const minQueryLen = 3 // в рунах, короче — шум

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// GenerateQueries строит набор поисковых запросов по позициям тендера:
// очищенное название, вариант без числовых токенов, первые три слова и
// вариант с единицей измерения. Дубликаты убираются с сохранением порядка
// первого вхождения.
func GenerateQueries(positions []entity.TenderPosition) []string {
	var queries []string

	for _, position := range positions {
		cleanName := normalizeName(position.Name)
		if cleanName == "" {
			continue
		}

		words := strings.Fields(cleanName)

		if len(words) >= 2 {
			queries = append(queries, cleanName)

			if lo.SomeBy(words, isDigits) {
				textOnly := strings.Join(lo.Reject(words, func(w string, _ int) bool {
					return isDigits(w)
				}), " ")
				if textOnly != "" {
					queries = append(queries, textOnly)
				}
			}

			queries = append(queries, strings.Join(words[:min(3, len(words))], " "))
		}

		if position.Unit != nil {
			queries = append(queries, cleanName+" "+*position.Unit)
		}
	}

	queries = lo.Filter(queries, func(q string, _ int) bool {
		return utf8.RuneCountInString(q) >= minQueryLen
	})

	return lo.Uniq(queries)
}

func normalizeName(name string) string {
	clean := nonWordRe.ReplaceAllString(name, " ")
	return strings.Join(strings.Fields(clean), " ")
}

func isDigits(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return word != ""
}
