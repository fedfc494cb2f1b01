package core

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Reloads the config file when it changes. The directory is watched since editors often replace the file instead of writing it.
type ConfigWatcher struct {
	Filename string
	OnError  func(error)

	w       *fsnotify.Watcher
	configs chan *Config
	done    chan struct{}
}

func NewConfigWatcher(filename string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "watcher")
	}
	if err := w0.Add(filepath.Dir(abs)); err != nil {
		_ = w0.Close()
		return nil, errors.Wrap(err, "watcher")
	}
	cw := &ConfigWatcher{
		Filename: abs,
		w:        w0,
		configs:  make(chan *Config),
		done:     make(chan struct{}),
	}
	go cw.eventLoop()
	return cw, nil
}

func (cw *ConfigWatcher) Close() error {
	close(cw.done)
	return cw.w.Close()
}

// Closed after the watcher is closed.
func (cw *ConfigWatcher) Configs() <-chan *Config {
	return cw.configs
}

//----------

func (cw *ConfigWatcher) eventLoop() {
	defer close(cw.configs)
	for {
		select {
		case <-cw.done:
			return
		case err, ok := <-cw.w.Errors:
			if !ok {
				return
			}
			cw.error(err)
		case ev, ok := <-cw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.Filename {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := LoadConfig(cw.Filename)
			if err != nil {
				cw.error(err)
				continue
			}
			select {
			case cw.configs <- cfg:
			case <-cw.done:
				return
			}
		}
	}
}

func (cw *ConfigWatcher) error(err error) {
	if cw.OnError != nil {
		cw.OnError(err)
	}
}
