package providers

import (
	"io"
	"os"
	"path/filepath"
	"sdn/internal/structures"
	"time"

	"github.com/rs/zerolog"
)

type TypeEnum string

// Log channels. Every line carries one so the combined stream can be
// filtered per concern.
const (
	TypeApp    TypeEnum = "app"
	TypePoll   TypeEnum = "poll"
	TypeNotify TypeEnum = "notify"
	TypeHTTP   TypeEnum = "http"
)

type Logger interface {
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Errorf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	log  zerolog.Logger
	file *os.File
}

const logFileName = "sdn.log"

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}
	if conf.Debug {
		level = zerolog.DebugLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}}

	var file *os.File
	if conf.Logger.Dir != "" {
		file, err = os.OpenFile(
			filepath.Join(conf.Logger.Dir, logFileName),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY,
			os.FileMode(conf.Logger.Mode),
		)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}

	log := zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()

	return &LogProvider{log: log, file: file}, nil
}

func (p *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	p.log.Debug().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	p.log.Info().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	p.log.Warn().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	p.log.Error().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	p.log.Fatal().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Close() {
	if p.file != nil {
		_ = p.file.Close()
	}
}
