package logger

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	purple = "\033[35m"
	cyan   = "\033[36m"
)

// Matches HTTP status codes (exactly 3 digits, 2xx-5xx)
var statusCodeRegex = regexp.MustCompile(`^[2-5]\d{2}$`)

// Init configures the global zerolog logger for the given environment.
// Development gets debug level, production gets info level.
func Init(env string) {
	noColor := !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())

	colored := func(color, s string) string {
		if noColor {
			return s
		}
		return color + s + reset
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "02.01.2006 15:04:05",
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			level := strings.ToUpper(fmt.Sprintf("%s", i))
			switch level {
			case "INFO":
				return colored(blue, "●")
			case "WARN":
				return colored(yellow, "●")
			case "ERROR", "FATAL":
				return colored(red, "●")
			default:
				return level
			}
		},
		FormatFieldName: func(i interface{}) string {
			return colored(cyan, fmt.Sprintf("%s", i)) + "="
		},
		FormatFieldValue: func(i interface{}) string {
			val := fmt.Sprintf("%s", i)

			switch val {
			case "GET", "POST", "PUT", "DELETE", "PATCH":
				return colored(purple, val)
			}

			if statusCodeRegex.MatchString(val) {
				switch val[0] {
				case '2':
					return colored(green, val)
				case '3':
					return colored(yellow, val)
				case '4', '5':
					return colored(red, val)
				}
			}

			return val
		},
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("env", env).
		Logger()

	switch env {
	case "development":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
