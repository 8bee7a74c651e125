package app

import "path/filepath"

// sameFile сравнивает пути после приведения к абсолютному виду:
// fsnotify отдаёт имя относительно наблюдаемой папки.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
