package document

import (
	"os"
	"path/filepath"
)

// Права создаваемых директорий и файлов.
const (
	dirPermStandard   os.FileMode = 0750
	filePermReadWrite os.FileMode = 0644
)

// setup применяет политику создания к пути и возвращает итоговый путь.
// Это единственная side-effecting часть конвейера конструирования:
//
//   - CreateNever: путь возвращается как есть; существование проверяется
//     постусловием ниже.
//   - CreateIfAbsent: родительские директории создаются рекурсивно;
//     отсутствующий файл создаётся эксклюзивно (O_EXCL). Проигрыш гонки
//     другому процессу проявляется как generic ошибка открытия — без
//     специального распознавания и без повтора.
//   - CreateAutoRename: родительские директории создаются; счётчик
//     дубликатов инкрементируется от разобранного значения (по умолчанию 0)
//     и имя пересобирается как "stem(n)ext", пока не найдётся свободное;
//     найденное имя создаётся эксклюзивно.
//
// В режиме dryRun выполняется тот же цикл разрешения имени, но ни
// директории, ни файлы не создаются — используется для предпросмотра
// имени, которое было бы выбрано (SuggestRename).
//
// Постусловие (все политики вне dry-run, CreateNever — всегда): если
// итоговый путь всё ещё
// не существует — операция целиком завершается FILE.NOT_FOUND. Это
// отлавливает CreateNever против отсутствующего файла и любое
// неожиданное остаточное отсутствие.
func setup(path string, policy CreatePolicy, dryRun bool) (string, error) {
	parsed := parseFilename(filepath.Base(path))

	switch policy {
	case CreateIfAbsent:
		if !dryRun {
			if err := ensureParent(path); err != nil {
				return "", err
			}
			if !pathExists(path) {
				if err := createExclusive(path); err != nil {
					return "", err
				}
			}
		}

	case CreateAutoRename:
		if !dryRun {
			if err := ensureParent(path); err != nil {
				return "", err
			}
		}
		dir := filepath.Dir(path)
		counter := parsed.Counter
		for pathExists(path) {
			counter++
			path = filepath.Join(dir, fileName(parsed.Stem, counter, parsed.Ext))
		}
		if !dryRun {
			if err := createExclusive(path); err != nil {
				return "", err
			}
		}
	}

	// Для CreateNever проверка существования — чтение, не побочный эффект,
	// поэтому выполняется и в dry-run.
	if (!dryRun || policy == CreateNever) && !pathExists(path) {
		return "", newError(ErrCodeFileNotFound, path, nil)
	}
	return path, nil
}

// ensureParent рекурсивно создаёт родительскую директорию пути.
func ensureParent(path string) error {
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, dirPermStandard); err != nil {
		return newError(ErrCodeCreateParent, parent, err)
	}
	return nil
}

// createExclusive создаёт файл эксклюзивно: если путь уже занят (в том числе
// из-за гонки с другим процессом) — возвращается ошибка открытия.
func createExclusive(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePermReadWrite)
	if err != nil {
		return newError(ErrCodeOpenFile, path, err)
	}
	return f.Close()
}
