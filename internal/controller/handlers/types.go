// Package handlers implements the command and text-message handlers:
// /start, /help, /donate and subject-code lookup.
package handlers

import (
	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/service"
)

type Handlers struct {
	lookup *service.LookupService
	states *service.StateService
	qrPath string
	logger *zap.Logger
}

func NewHandlers(
	lookup *service.LookupService,
	states *service.StateService,
	qrPath string,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		lookup: lookup,
		states: states,
		qrPath: qrPath,
		logger: logger,
	}
}
