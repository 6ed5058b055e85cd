// Package handlers агрегирует регистрацию всех обработчиков команд.
package handlers

import (
	"sync"

	"github.com/Kargones/docforge/internal/command/handlers/batchhandler"
	"github.com/Kargones/docforge/internal/command/handlers/createhandler"
	"github.com/Kargones/docforge/internal/command/handlers/help"
	"github.com/Kargones/docforge/internal/command/handlers/resolvehandler"
	"github.com/Kargones/docforge/internal/command/handlers/version"
)

var registerOnce sync.Once

// RegisterAll регистрирует все обработчики команд в глобальном реестре.
// Повторные вызовы не имеют эффекта — Register паникует на дубликатах.
func RegisterAll() {
	registerOnce.Do(func() {
		createhandler.RegisterCmd()
		resolvehandler.RegisterCmd()
		batchhandler.RegisterCmd()
		version.RegisterCmd()
		help.RegisterCmd()
	})
}
