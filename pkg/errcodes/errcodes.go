package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	// Коды анализа истории тендеров.
	NoPositionsFound     failure.ErrorCode = "NoPositionsFound"     // Из документа не извлечено ни одной позиции
	SearchUnavailable    failure.ErrorCode = "SearchUnavailable"    // Поисковый API недоступен по всем запросам
	ChartRenderingFailed failure.ErrorCode = "ChartRenderingFailed" // График не построился — отчёт уходит без него

	// Коды внешних клиентов.
	TenderNotFound      failure.ErrorCode = "TenderNotFound"      // Реестровый номер не найден ни в закупках, ни в контрактах
	InvalidTenderNumber failure.ErrorCode = "InvalidTenderNumber" // В сообщении нет реестрового номера или ссылки
	InvalidINN          failure.ErrorCode = "InvalidINN"
	EmptyAPIResponse    failure.ErrorCode = "EmptyAPIResponse"
)
