package document

import "os"

// Mode описывает режим открытия файла — что с ним разрешено делать.
//
// ModeRead: только чтение.
//
// ModeReplace: стереть файл и записать новое содержимое.
//
// ModeAppend: дописывать в конец файла.
//
// ModeReadReplace: чтение + стирание и запись нового содержимого.
//
// ModeReadAppend: чтение + дописывание в конец.
//
// Read, ReadReplace, ReadAppend — readable.
// Replace, Append, ReadReplace, ReadAppend — writable.
type Mode int

const (
	// ModeRead — только чтение (режим по умолчанию).
	ModeRead Mode = iota
	// ModeReplace — перезапись с усечением.
	ModeReplace
	// ModeAppend — дозапись в конец.
	ModeAppend
	// ModeReadReplace — чтение и перезапись с усечением.
	ModeReadReplace
	// ModeReadAppend — чтение и дозапись в конец.
	ModeReadAppend
)

// Readable сообщает, разрешено ли чтение в данном режиме.
func (m Mode) Readable() bool {
	switch m {
	case ModeRead, ModeReadReplace, ModeReadAppend:
		return true
	default:
		return false
	}
}

// Writable сообщает, разрешена ли запись в данном режиме.
func (m Mode) Writable() bool {
	switch m {
	case ModeReplace, ModeAppend, ModeReadReplace, ModeReadAppend:
		return true
	default:
		return false
	}
}

// Appendable сообщает, ведётся ли запись в конец файла.
func (m Mode) Appendable() bool {
	switch m {
	case ModeAppend, ModeReadAppend:
		return true
	default:
		return false
	}
}

// flags переводит режим в флаги os.OpenFile.
// Replace-варианты усекают файл при открытии (O_TRUNC).
func (m Mode) flags() int {
	switch m {
	case ModeRead:
		return os.O_RDONLY
	case ModeReplace:
		return os.O_WRONLY | os.O_TRUNC
	case ModeAppend:
		return os.O_WRONLY | os.O_APPEND
	case ModeReadReplace:
		return os.O_RDWR | os.O_TRUNC
	case ModeReadAppend:
		return os.O_RDWR | os.O_APPEND
	default:
		return os.O_RDONLY
	}
}

// String возвращает строковое представление режима.
func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeAppend:
		return "append"
	case ModeReadReplace:
		return "read-replace"
	case ModeReadAppend:
		return "read-append"
	default:
		return "read"
	}
}
