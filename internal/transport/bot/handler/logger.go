package handler

import "tender_bot/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault
