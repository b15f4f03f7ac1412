package commands

import (
	"io"

	"github.com/rs/zerolog"
)

// ZerologAdapter bridges a zerolog logger onto the rcloud.Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates an adapter writing console-formatted log lines to w.
func NewZerologAdapter(w io.Writer) *ZerologAdapter {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	return &ZerologAdapter{logger: logger}
}

// Debug implements rcloud.Logger.Debug.
func (a *ZerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

// Info implements rcloud.Logger.Info.
func (a *ZerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

// Warn implements rcloud.Logger.Warn.
func (a *ZerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

// Error implements rcloud.Logger.Error.
func (a *ZerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}
