// Package constants содержит константы приложения docforge,
// сгруппированные по функциональному назначению.
package constants

// AppName — имя приложения. Используется в метриках, трейсинге и выводе версии.
const AppName = "docforge"

// Константы версии приложения. Перезаписываются при сборке
// через -ldflags "-X ...".
var (
	// Version — версия приложения.
	Version = "dev"
	// CommitHash — хеш коммита на момент сборки.
	CommitHash = "unknown"
)

// APIVersion — версия формата JSON-вывода.
const APIVersion = "v1"

// Имена команд.
const (
	// ActCreate — создание файла по локации/пути согласно политике.
	ActCreate = "create"
	// ActResolve — разрешение локации в путь без побочных эффектов.
	ActResolve = "resolve"
	// ActBatch — пакетное создание файлов из YAML-манифеста.
	ActBatch = "batch"
	// ActVersion — вывод информации о версии.
	ActVersion = "version"
	// ActHelp — вывод списка доступных команд.
	ActHelp = "help"
)

// Переменные окружения приложения.
const (
	// EnvCommand — имя выполняемой команды (альтернатива первому аргументу CLI).
	EnvCommand = "DF_COMMAND"
	// EnvOutputFormat — формат вывода результатов: "text" или "json".
	EnvOutputFormat = "DF_OUTPUT_FORMAT"
	// EnvDryRun — при "true"/"1" команды выводят план действий без выполнения.
	EnvDryRun = "DF_DRY_RUN"
	// EnvVerbose — при "true"/"1" план выводится перед выполнением.
	EnvVerbose = "DF_VERBOSE"
	// EnvConfig — путь к опциональному файлу конфигурации app.yaml.
	EnvConfig = "DF_CONFIG"
)

// Сообщения приложения.
const (
	// MsgAppExit — сообщение о завершении работы приложения.
	MsgAppExit = "Завершение работы приложения"
	// MsgErrProcessing — ключ лога при обработке ошибки.
	MsgErrProcessing = "Обработка ошибки"
)
