// Package logger arma el logger estructurado del servicio sobre zerolog.
// La salida y el nivel salen de la configuración de la aplicación: consola
// legible en development, JSON por stdout en cualquier otro entorno.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger expone la API de zerolog ya configurada para este servicio.
// Se inyecta por puntero en los componentes que registran eventos.
type Logger struct {
	zerolog.Logger
}

// New construye el logger con el entorno y el nivel de APP_ENV/APP_LOG_LEVEL.
// El nivel usa la sintaxis de zerolog (trace, debug, info, warn, error);
// vacío o irreconocible cae a info en vez de fallar el arranque.
func New(env, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if env == "development" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly})
	} else {
		zl = zerolog.New(os.Stdout)
	}

	return &Logger{Logger: zl.Level(lvl).With().Timestamp().Logger()}
}
