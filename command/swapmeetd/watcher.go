// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/util"
)

// called with the freshly parsed configuration after each change
type reloadFunc func(*Configuration) error

type configurationWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	reload   reloadFunc
	done     chan struct{}
}

// watch the directory rather than the file so that editors which
// replace the file on save are still seen
func newConfigurationWatcher(log *logger.L, configurationFile string, reload reloadFunc) (*configurationWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(configurationFile))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrConfigurationNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	w := &configurationWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		reload:   reload,
		done:     make(chan struct{}),
	}
	go w.run()

	return w, nil
}

func (w *configurationWatcher) run() {
	defer close(w.done)

loop:
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			w.log.Debugf("file event: %v", event)
			if !isChange(event) {
				continue loop
			}

			options, err := getConfiguration(w.filePath)
			if nil != err {
				w.log.Errorf("reload: %q  error: %s", w.filePath, err)
				continue loop
			}
			err = w.reload(options)
			if nil != err {
				w.log.Errorf("apply: %q  error: %s", w.filePath, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
	w.log.Info("stopped")
}

// Stop - stop watching and wait for the event loop to exit
func (w *configurationWatcher) Stop() {
	w.watcher.Close()
	<-w.done
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

// apply the parts of a changed configuration that can change while running
func applyRequestRate(apply func(float64, int) error) reloadFunc {
	return func(options *Configuration) error {
		return apply(options.ClientRPC.RequestRate, options.ClientRPC.RequestBurst)
	}
}
