package service

const (
	outcomeOK             = "ok"
	outcomeInvalidInput   = "invalid_input"
	outcomeTableIntegrity = "table_integrity"
	outcomeError          = "error"

	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)
