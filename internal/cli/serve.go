package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/ianwalkeruk/c2draw/pkg/codec"
	"github.com/ianwalkeruk/c2draw/pkg/errors"
	"github.com/ianwalkeruk/c2draw/pkg/pipeline"
)

// maxDocumentSize bounds uploaded .c4d documents.
const maxDocumentSize = 4 << 20

// contentTypes maps export formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatPlantUML: "text/plain; charset=utf-8",
	pipeline.FormatMermaid:  "text/plain; charset=utf-8",
	pipeline.FormatDOT:      "text/plain; charset=utf-8",
	pipeline.FormatJSON:     "application/json",
	pipeline.FormatSVG:      "image/svg+xml",
	pipeline.FormatPNG:      "image/png",
}

// serveCommand creates the serve command running the HTTP export endpoint.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP export endpoint",
		Long: `Run a small HTTP server exposing the export pipeline.

Endpoints:
  POST /export/{format}  render the .c4d document in the request body
  GET  /healthz          liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := c.newRunner(noCache)

			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(middleware.Recoverer)
			r.Use(middleware.Timeout(30 * time.Second))

			r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprintln(w, "ok")
			})
			r.Post("/export/{format}", c.handleExport(runner))

			srv := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			c.Logger.Info("listening", "addr", addr)

			select {
			case <-cmd.Context().Done():
				c.Logger.Info("shutting down")
				return srv.Close()
			case err := <-errCh:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) handleExport(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := chi.URLParam(r, "format")
		if err := pipeline.ValidateFormat(format); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		doc, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
			return
		}

		result, err := runner.Execute(r.Context(), pipeline.Options{
			Document: doc,
			Formats:  []string{format},
		})
		if err != nil {
			writeError(w, exportStatus(err), err)
			return
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[format])
	}
}

// exportStatus maps pipeline failures to HTTP status codes. Document
// problems are the client's fault; anything else is ours.
func exportStatus(err error) int {
	switch {
	case stderrors.Is(err, codec.ErrMalformed),
		stderrors.Is(err, codec.ErrDanglingRelationship):
		return http.StatusBadRequest
	case stderrors.Is(err, codec.ErrUnsupportedVersion):
		return http.StatusUnprocessableEntity
	case errors.GetCode(err) != "" && errors.GetCode(err) != errors.ErrCodeInternal:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	code := errors.GetCode(err)
	if code != "" {
		fmt.Fprintf(w, "%s: %s\n", code, errors.UserMessage(err))
		return
	}
	fmt.Fprintln(w, err.Error())
}
