package uartmatrix

import (
	"github.com/rs/zerolog"
)

// zerologLogger, Logger arayüzünü zerolog üzerinden uygular.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger, bir zerolog.Logger'ı kodlayıcı logger'ına çevirir.
// Mesajlar debug seviyesinde, "component=uartmatrix" alanıyla yazılır.
//
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	enc := uartmatrix.NewEncoder(uartmatrix.WithLogger(uartmatrix.NewZerologLogger(zl)))
func NewZerologLogger(l zerolog.Logger) Logger {
	return zerologLogger{log: l.With().Str("component", "uartmatrix").Logger()}
}

func (z zerologLogger) Printf(format string, v ...interface{}) {
	z.log.Debug().Msgf(format, v...)
}
