package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler processes one payload file discovered in the inbox.
type Handler func(path string)

// Watcher monitors the inbox directory and hands new payload files to its
// handler. Events are debounced so a payload still being written is handed
// over once, after the writes settle.
type Watcher struct {
	inbox   string
	handler Handler
	verbose bool

	watcher  *fsnotify.Watcher
	debounce *fileDebouncer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher over the inbox directory.
func NewWatcher(inbox string, handler Handler, verbose bool) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		inbox:   inbox,
		handler: handler,
		verbose: verbose,
		watcher: fsw,
		ctx:     ctx,
		cancel:  cancel,
	}
	w.debounce = newFileDebouncer(w.handleBatch)
	return w, nil
}

// Start begins watching. Payload files already sitting in the inbox are
// queued as well, so results delivered while nobody was watching still land.
func (w *Watcher) Start() error {
	if err := os.MkdirAll(w.inbox, 0755); err != nil {
		return fmt.Errorf("create inbox: %w", err)
	}
	if err := w.watcher.Add(w.inbox); err != nil {
		return fmt.Errorf("watch inbox: %w", err)
	}

	if w.verbose {
		fmt.Printf("📁 Watching inbox: %s\n", w.inbox)
	}

	entries, err := os.ReadDir(w.inbox)
	if err != nil {
		return fmt.Errorf("scan inbox: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() && isPayloadFile(e.Name()) {
			w.debounce.Add(filepath.Join(w.inbox, e.Name()))
		}
	}

	w.wg.Add(1)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.cancel()
	_ = w.watcher.Close()
	w.debounce.Stop()
	w.wg.Wait()
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "⚠️  Watch error: %v\n", err)

		case <-w.ctx.Done():
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}
	if !isPayloadFile(filepath.Base(event.Name)) {
		return
	}
	if w.verbose {
		fmt.Printf("📝 payload: %s\n", filepath.Base(event.Name))
	}
	w.debounce.Add(event.Name)
}

// handleBatch hands each distinct settled path to the handler.
func (w *Watcher) handleBatch(paths []string) {
	seen := make(map[string]bool, len(paths))
	distinct := make([]string, 0, len(paths))
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			distinct = append(distinct, p)
		}
	}
	sort.Strings(distinct)
	for _, p := range distinct {
		w.handler(p)
	}
}

// isPayloadFile accepts plain .json files; dotfiles and editor temp files
// are ignored.
func isPayloadFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".json")
}

// fileDebouncer batches rapid events for the same payload files.
type fileDebouncer struct {
	pending []string
	timer   *time.Timer
	mu      sync.Mutex
	onFlush func([]string)
	delay   time.Duration
	stopped bool
}

func newFileDebouncer(onFlush func([]string)) *fileDebouncer {
	return &fileDebouncer{
		onFlush: onFlush,
		delay:   500 * time.Millisecond,
	}
}

// Add queues a path and restarts the quiet-period timer.
func (d *fileDebouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = append(d.pending, path)

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

func (d *fileDebouncer) flush() {
	d.mu.Lock()
	paths := d.pending
	d.pending = nil
	d.mu.Unlock()

	if len(paths) > 0 && d.onFlush != nil {
		d.onFlush(paths)
	}
}

// Stop drops pending paths and prevents further flushes.
func (d *fileDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
