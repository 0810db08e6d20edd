package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/observability"
	"github.com/matzehuels/layerstack/pkg/pipeline"
)

// serveShutdownTimeout bounds how long in-flight requests may run after Ctrl+C.
const serveShutdownTimeout = 3 * time.Second

// serveCommand creates the serve command for the browser preview.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		noCache  bool
		cacheURL string
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()

	cmd := &cobra.Command{
		Use:   "serve [manifest]",
		Short: "Preview a multiplex graph in the browser with live reload",
		Long: `Serve a rendered manifest over HTTP for iterating on stack data.

Every request re-renders the manifest from disk, so edits show up on reload.
A file watcher on the manifest pushes reload events to connected browsers
over Server-Sent Events, making saved changes appear without manual
refreshing. The render cache keeps unchanged manifests cheap to serve.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], opts, addr, noCache, cacheURL)
		},
	}

	// Common flags
	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&cacheURL, "cache-url", "", "remote cache URL (redis:// or mongodb://)")

	// Layout flags
	cmd.Flags().StringVar(&opts.Engine, "engine", opts.Engine, "layout engine: force (default), circle")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "layout engine seed")

	// Render flags
	registerRenderFlags(cmd, &opts)

	return cmd
}

// runServe renders the manifest once to surface errors early, then serves it
// until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, input string, opts pipeline.Options, addr string, noCache bool, cacheURL string) error {
	if input == "-" {
		return errors.New(errors.ErrCodeInvalidInput, "serve needs a manifest file to watch, not stdin")
	}
	runner, err := c.newRunner(ctx, cacheURL, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Manifest = input
	opts.Formats = []string{pipeline.FormatHTML}
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	if _, err := runner.Execute(ctx, opts); err != nil {
		return fmt.Errorf("render %s: %w", input, err)
	}
	prog.done("Initial render complete")

	hub, err := newReloadHub(input)
	if err == nil {
		if err = hub.Start(); err != nil {
			hub.Stop()
		}
	}
	if err != nil {
		printWarning("Live reload disabled: %v", err)
		hub = nil
	} else {
		defer hub.Stop()
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: c.serveRouter(runner, opts, hub),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	printSuccess("Preview server running")
	printKeyValue("URL", StyleLink.Render(previewURL(addr)))
	printKeyValue("Manifest", input)
	printNewline()
	printInfo("Watching %s for changes. Press Ctrl+C to stop.", input)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// =============================================================================
// Router & Handlers
// =============================================================================

// serveRouter assembles the preview routes. The SSE endpoint is only mounted
// when the reload hub is running.
func (c *CLI) serveRouter(runner *pipeline.Runner, opts pipeline.Options, hub *reloadHub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(c.loggerMiddleware)
	r.Use(hookMiddleware)

	r.Get("/", previewHandler(runner, opts, hub != nil))
	if hub != nil {
		r.Get("/events", hub.SSEHandler())
	}
	return r
}

// loggerMiddleware attaches the CLI logger to the request context.
func (c *CLI) loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), c.Logger)))
	})
}

// hookMiddleware reports request lifecycle events to the server hooks.
func hookMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

// statusWriter records the response status for the hook middleware. It
// forwards Flush so the SSE handler still sees a http.Flusher.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// previewHandler renders the manifest on every request so saved edits show
// up on reload. With livereload set, the SSE client script is injected into
// the page.
func previewHandler(runner *pipeline.Runner, opts pipeline.Options, livereload bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := runner.Execute(r.Context(), opts)
		if err != nil {
			loggerFromContext(r.Context()).Error("render failed", "manifest", opts.Manifest, "err", err)
			http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
			return
		}

		page := result.Artifacts[pipeline.FormatHTML]
		if livereload {
			page = injectReloadScript(page)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

// previewURL derives the browsable URL from the listen address.
func previewURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
