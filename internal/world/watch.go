package world

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay lets editors finish writing before a scene is re-read.
const reloadDelay = 100 * time.Millisecond

// Watcher reports changed scene files in the watched directories.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSceneFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDelay {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// WatchScene starts watching the directory of the loaded scene.
func (w *World) WatchScene() error {
	if w.ScenePath == "" {
		return fmt.Errorf("watch scene: no scene loaded")
	}
	if w.watcher != nil {
		return nil
	}
	watcher, err := NewWatcher(filepath.Dir(w.ScenePath))
	if err != nil {
		return fmt.Errorf("watch scene: %w", err)
	}
	w.watcher = watcher
	log.Printf("World: watching %s", w.ScenePath)
	return nil
}

// PollReload drains watcher events without blocking and reloads the scene
// once it has been quiet for reloadDelay. Call it from the game loop.
// Returns true when the scene was reloaded.
func (w *World) PollReload() bool {
	if w.watcher == nil {
		return false
	}

	for {
		select {
		case name, ok := <-w.watcher.Events:
			if !ok {
				return false
			}
			if sameFile(name, w.ScenePath) {
				w.reloadAt = time.Now().Add(reloadDelay)
			}
			continue
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return false
			}
			log.Printf("World: watcher error: %v", err)
			continue
		default:
		}
		break
	}

	if w.reloadAt.IsZero() || time.Now().Before(w.reloadAt) {
		return false
	}
	w.reloadAt = time.Time{}

	if err := w.LoadScene(w.ScenePath); err != nil {
		log.Printf("World: reload failed, keeping current scene: %v", err)
		return false
	}
	return true
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
