package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher сообщает об изменениях YAML-файлов конфигурации.
// Пути приходят в канал Events; игровой цикл вычитывает его без блокировки.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll возвращает изменённый путь, если он есть, не блокируя вызывающего.
func (w *Watcher) Poll() (string, bool) {
	select {
	case path := <-w.Events:
		return path, true
	default:
		return "", false
	}
}

// PollError возвращает ошибку наблюдателя, если она есть, не блокируя вызывающего.
func (w *Watcher) PollError() (error, bool) {
	select {
	case err := <-w.Errors:
		return err, true
	default:
		return nil, false
	}
}

// run сообщает о файле только после того, как события по нему утихли
// на watchDebounce: редактор может сначала обрезать файл, а потом дописать.
func (w *Watcher) run() {
	pending := make(map[string]struct{})
	var settle <-chan time.Time
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(ev.Name) {
				continue
			}
			pending[ev.Name] = struct{}{}
			settle = time.After(watchDebounce)
		case <-settle:
			settle = nil
			for name := range pending {
				delete(pending, name)
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default: // предыдущая ошибка ещё не прочитана
			}
		case <-w.closeCh:
			return
		}
	}
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
