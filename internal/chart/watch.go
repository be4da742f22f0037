package chart

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports when .json charts appear, change or disappear in a
// directory. Bursts of events collapse into a single pending signal.
type Watcher struct {
	fs      *fsnotify.Watcher
	changed chan struct{}
}

func Watch(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	if err := fw.Add(dir); nil != err {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fs:      fw,
		changed: make(chan struct{}, 1),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".json" || event.Op == fsnotify.Chmod {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Println("chart watcher:", err)
		}
	}
}

// Changed fires after the directory changes. A nil Watcher never fires.
func (w *Watcher) Changed() <-chan struct{} {
	if nil == w {
		return nil
	}
	return w.changed
}

func (w *Watcher) Close() error {
	if nil == w {
		return nil
	}
	return w.fs.Close()
}
