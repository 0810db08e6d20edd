package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/layerstack/pkg/observability"
)

// reloadHub manages SSE connections and manifest watching for live reload.
// When the manifest changes on disk, connected browsers receive reload events.
type reloadHub struct {
	manifest string
	watcher  *fsnotify.Watcher

	// clients holds all connected SSE clients
	mu      sync.RWMutex
	clients map[chan struct{}]struct{}

	// context for shutdown
	ctx    context.Context
	cancel context.CancelFunc

	// debounce rapid file changes
	lastEvent time.Time
	debounce  time.Duration
}

// newReloadHub creates a live-reload hub for the given manifest path.
func newReloadHub(manifest string) (*reloadHub, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &reloadHub{
		manifest: filepath.Clean(manifest),
		watcher:  watcher,
		clients:  make(map[chan struct{}]struct{}),
		ctx:      ctx,
		cancel:   cancel,
		debounce: 200 * time.Millisecond,
	}, nil
}

// Start begins watching the manifest for changes. The watch is on the parent
// directory rather than the file, which survives editors that replace the
// file on save.
func (h *reloadHub) Start() error {
	dir := filepath.Dir(h.manifest)
	if err := h.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	go h.watchLoop()
	return nil
}

// Stop shuts down the hub and disconnects all clients.
func (h *reloadHub) Stop() {
	h.cancel()
	h.watcher.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		close(ch)
	}
	h.clients = make(map[chan struct{}]struct{})
}

// ClientCount returns the number of connected clients.
func (h *reloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// watchLoop processes file system events and notifies clients.
func (h *reloadHub) watchLoop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}

			// Only write/create events on the manifest itself (not chmod,
			// and not siblings in the same directory)
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != h.manifest {
				continue
			}

			// Debounce rapid changes
			now := time.Now()
			if now.Sub(h.lastEvent) < h.debounce {
				continue
			}
			h.lastEvent = now

			observability.Server().OnReload(h.ctx, h.manifest)
			h.notifyClients()

		case _, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors don't stop the loop
		}
	}
}

// notifyClients sends a reload signal to all connected SSE clients.
func (h *reloadHub) notifyClients() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.clients {
		select {
		case ch <- struct{}{}:
		default:
			// Client not ready, skip (non-blocking)
		}
	}
}

// SSEHandler returns the HTTP handler for the SSE endpoint.
func (h *reloadHub) SSEHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		// Register this client
		clientCh := make(chan struct{}, 1)
		h.mu.Lock()
		h.clients[clientCh] = struct{}{}
		h.mu.Unlock()

		// Cleanup on disconnect
		defer func() {
			h.mu.Lock()
			delete(h.clients, clientCh)
			h.mu.Unlock()
		}()

		fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-h.ctx.Done():
				return
			case _, ok := <-clientCh:
				if !ok {
					return
				}
				fmt.Fprintf(w, "event: reload\ndata: {\"action\":\"reload\"}\n\n")
				flusher.Flush()
			}
		}
	}
}

// reloadScript is the SSE client injected into served pages. It reconnects
// with exponential backoff when the server restarts.
const reloadScript = `<script>
(function() {
  if (typeof(EventSource) === 'undefined') return;
  var reconnectDelay = 1000;
  var maxReconnectDelay = 30000;

  function connect() {
    var es = new EventSource('/events');

    es.addEventListener('connected', function() {
      console.log('[layerstack] Live reload connected');
      reconnectDelay = 1000;
    });

    es.addEventListener('reload', function() {
      console.log('[layerstack] Reloading...');
      location.reload();
    });

    es.onerror = function() {
      es.close();
      setTimeout(connect, reconnectDelay);
      reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
    };
  }

  connect();
})();
</script>`

// injectReloadScript inserts the SSE client script before the closing body
// tag, or appends it when the page has no body tag.
func injectReloadScript(page []byte) []byte {
	marker := []byte("</body>")
	idx := bytes.LastIndex(page, marker)
	if idx < 0 {
		return append(append([]byte{}, page...), reloadScript...)
	}

	out := make([]byte, 0, len(page)+len(reloadScript))
	out = append(out, page[:idx]...)
	out = append(out, reloadScript...)
	out = append(out, page[idx:]...)
	return out
}
