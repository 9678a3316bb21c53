package logger

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger())}

type Logger struct {
	mu      sync.RWMutex
	entry   *logrus.Entry
	props   *viper.Viper
	session string
}

// Properties mirror logger.properties.
type Properties struct {
	LogFilename string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
	Level       string
}

func defaultProperties() Properties {
	return Properties{
		LogFilename: "pong.log",
		MaxSize:     10,
		MaxBackups:  3,
		MaxAge:      28,
		Compress:    false,
		Level:       "Info",
	}
}

func readLoggerProperties(v *viper.Viper) (Properties, bool) {
	p := defaultProperties()
	if err := v.ReadInConfig(); err != nil {
		return p, false
	}

	if v.IsSet("logFilename") {
		p.LogFilename = cast.ToString(v.Get("logFilename"))
	}
	if v.IsSet("maxSize") {
		p.MaxSize = cast.ToInt(v.Get("maxSize"))
	}
	if v.IsSet("maxBackups") {
		p.MaxBackups = cast.ToInt(v.Get("maxBackups"))
	}
	if v.IsSet("maxAge") {
		p.MaxAge = cast.ToInt(v.Get("maxAge"))
	}
	if v.IsSet("compress") {
		p.Compress = cast.ToBool(v.Get("compress"))
	}
	if v.IsSet("level") {
		p.Level = cast.ToString(v.Get("level"))
	}
	return p, true
}

// Init reads <dir>/logger.properties and routes JSON logs to a rotating file.
// A missing properties file falls back to the defaults.
func (l *Logger) Init(fs afero.Fs, dir string) Properties {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(filepath.Join(dir, "logger.properties"))
	v.SetConfigType("properties")

	props, found := readLoggerProperties(v)

	rotating := &lumberjack.Logger{
		Filename:   props.LogFilename,
		MaxSize:    props.MaxSize,
		MaxBackups: props.MaxBackups,
		MaxAge:     props.MaxAge,
		Compress:   props.Compress,
	}
	l.setup(rotating, props.Level)

	if found {
		l.mu.Lock()
		l.props = v
		l.mu.Unlock()
	}
	return props
}

// InitWriter sends JSON logs to w instead of the rotating file.
func (l *Logger) InitWriter(w io.Writer, level string) {
	l.setup(w, level)
}

func (l *Logger) setup(w io.Writer, level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(w)
	logrus.SetLevel(parseLevel(level))

	l.mu.Lock()
	defer l.mu.Unlock()
	l.session = uuid.NewString()
	l.entry = logrus.WithField("session", l.session)
}

// Watch reapplies the level whenever logger.properties changes on disk. It is
// a no-op when Init found no properties file.
func (l *Logger) Watch() {
	l.mu.RLock()
	v := l.props
	l.mu.RUnlock()
	if v == nil {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		level := parseLevel(cast.ToString(v.Get("level")))
		logrus.SetLevel(level)
		l.Info(LevelReloadedMsg, logrus.Fields{"level": level.String(), "file": e.Name})
	})
	v.WatchConfig()
}

func parseLevel(level string) logrus.Level {
	switch cast.ToString(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) Session() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.session
}

func (l *Logger) with(fields []logrus.Fields) *logrus.Entry {
	l.mu.RLock()
	e := l.entry
	l.mu.RUnlock()
	for _, f := range fields {
		e = e.WithFields(f)
	}
	return e
}

func (l *Logger) Info(message string, fields ...logrus.Fields) {
	l.with(fields).Info(message)
}

func (l *Logger) Error(message string, fields ...logrus.Fields) {
	l.with(fields).Error(message)
}

func (l *Logger) Debug(message string, fields ...logrus.Fields) {
	l.with(fields).Debug(message)
}

func (l *Logger) Warn(message string, fields ...logrus.Fields) {
	l.with(fields).Warn(message)
}

func (l *Logger) Fatal(message string, fields ...logrus.Fields) {
	l.with(fields).Fatal(message)
}
