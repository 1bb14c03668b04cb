package view

const StartMessage = `🤖 <b>Добро пожаловать в TenderBot!</b>

Я помогу проанализировать тендер и найти историю похожих закупок.

<b>Как использовать:</b>
1. Отправьте номер тендера (19 цифр) или ссылку на него с сайта госзакупок
2. Я получу карточку тендера, найду похожие закупки за последние 12 месяцев и покажу динамику цен

<b>Команды:</b>
/start — это сообщение
/help — справка
/history &lt;ИНН или ключевые слова&gt; — история закупок

<b>Пример:</b>
<code>0173100004725000020</code>`

const HelpMessage = `ℹ️ <b>TenderBot — помощник по госзакупкам</b>

Он умеет:
• анализировать историю похожих тендеров и динамику цен
• показывать контракты победителя по ИНН
• искать тендеры по ключевым словам

Пришлите номер тендера или воспользуйтесь /history.`

const HistoryUsage = `❌ Использование: /history &lt;ИНН или ключевые слова&gt;

Примеры:
<code>/history 7707083893</code>
<code>/history цемент</code>`

const (
	AnalyzeInProgress    = "⏳ Анализирую тендер, это может занять до минуты..."
	HistoryInProgress    = "⏳ Получаю историю закупок..."
	AnalyzeFailed        = "Не удалось выполнить анализ, попробуйте позже"
	HistoryFailed        = "Не удалось получить историю закупок, попробуйте позже"
	NoContractsByINN     = "❌ Не найдено контрактов по ИНН."
	NoTendersByKeywords  = "❌ Не найдено тендеров по ключевым словам."
	TenderFetchFailed    = "Не удалось получить карточку тендера"
	ChartCaption         = "📊 Динамика цен по похожим тендерам"
	ContractsByINNHeader = "Контракты победителя по ИНН %s (первые %d):\n"
	TendersHeader        = "Тендеры по запросу «%s» (первые %d):\n"
)
