package log

import (
	"github.com/rs/zerolog"

	"github.com/avidale/pinball/pkg/errors"
)

// EnableZerologWarnings routes library warnings to the given zerolog logger.
// Warnings that implement zerolog.LogObjectMarshaler, such as
// errors.ConvergenceWarning, are emitted as structured objects; anything else
// falls back to the error message.
func EnableZerologWarnings(logger zerolog.Logger) {
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.EmbedObject(obj).Msg("warning")
			return
		}
		event.Err(warning).Msg("warning")
	})
}
