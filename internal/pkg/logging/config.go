package logging

// Поддерживаемые форматы вывода логов.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Поддерживаемые уровни логирования.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Поддерживаемые типы вывода логов.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию для Config.
// Единый источник истины — используется в ProvideLogger и getDefaultLoggingConfig.
const (
	DefaultLevel      = LevelInfo
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/docforge.log"
	DefaultMaxSize    = 100 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Config содержит настройки логирования.
type Config struct {
	// Format определяет формат вывода: "json" или "text".
	// По умолчанию: "text".
	Format string

	// Level определяет минимальный уровень логирования.
	// Допустимые значения: "debug", "info", "warn", "error".
	Level string

	// Output определяет куда выводить логи: "stderr" или "file".
	Output string

	// FilePath задаёт путь к файлу логов (при output="file").
	FilePath string

	// MaxSize задаёт максимальный размер файла в мегабайтах перед ротацией.
	MaxSize int

	// MaxBackups задаёт количество backup файлов.
	MaxBackups int

	// MaxAge задаёт максимальный возраст backup файлов в днях.
	MaxAge int

	// Compress определяет сжимать ли backup файлы в gzip.
	Compress bool
}
