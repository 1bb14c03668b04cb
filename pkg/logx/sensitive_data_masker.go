package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Маскируем ключи внешних API (query-параметры DaMIA/TenderGuru),
// токен бота в URL и типовые чувствительные JSON-поля.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile("(?s)(Authorization: Api-Key ).+?(\r)"),
	// Query-параметры.
	regexp.MustCompile(`([?&]key=)[^&\s"]+()`),
	regexp.MustCompile(`([?&]api_code=)[^&\s"]+()`),
	// Токен бота в пути запроса к Bot API.
	regexp.MustCompile(`(/bot)\d+:[\w-]+(/)`),
	// JSON-поля.
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	regexp.MustCompile(`(?s)("api_?[Kk]ey":\s?").+?(")`),
	regexp.MustCompile(`(?s)("token":\s?").+?(")`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
