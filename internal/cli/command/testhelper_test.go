package command

import (
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/urfave/cli/v2"

	cliconfig "github.com/rupam-04/cw20/internal/cli/config"
)

// mockServer creates a test HTTP server with custom handlers.
type mockServer struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
}

// newMockServer creates a new mock server.
func newMockServer() *mockServer {
	m := &mockServer{
		handlers: make(map[string]http.HandlerFunc),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Find handler by path prefix match
		for pattern, handler := range m.handlers {
			if strings.HasPrefix(r.URL.Path, pattern) {
				handler(w, r)
				return
			}
		}
		http.NotFound(w, r)
	}))
	return m
}

// handle registers a handler for a path pattern.
func (m *mockServer) handle(pattern string, handler http.HandlerFunc) {
	m.handlers[pattern] = handler
}

// envelopeResponse writes a success envelope with the given data.
func envelopeResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"code":    "OK",
		"message": "success",
		"data":    data,
	})
}

// errorResponse writes an error envelope.
func errorResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"code":    code,
		"message": message,
	})
}

// outcomeData builds an execute outcome payload.
func outcomeData(action string, attrs ...[2]string) map[string]any {
	attributes := make([]map[string]string, 0, len(attrs))
	for _, kv := range attrs {
		attributes = append(attributes, map[string]string{"key": kv[0], "value": kv[1]})
	}
	return map[string]any{
		"action":     action,
		"attributes": attributes,
	}
}

// testContext creates a CLI context for testing with the mock server.
// extraArgs follow the implicit --server and --caller flags.
func testContext(server *mockServer, extraArgs ...string) *cli.Context {
	app := &cli.App{
		Name:  "test",
		Flags: globalFlags(cliconfig.Default()),
	}

	// Create a flag set
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		f.Apply(set)
	}

	fullArgs := []string{"--server", server.URL, "--caller", "owner"}
	fullArgs = append(fullArgs, extraArgs...)
	set.Parse(fullArgs)

	return cli.NewContext(app, set, nil)
}

// testContextWithFlags creates a CLI context with extra command flags
// applied alongside the global ones.
func testContextWithFlags(server *mockServer, cmdFlags []cli.Flag, extraArgs ...string) *cli.Context {
	app := &cli.App{
		Name:  "test",
		Flags: globalFlags(cliconfig.Default()),
	}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		f.Apply(set)
	}
	for _, f := range cmdFlags {
		f.Apply(set)
	}

	fullArgs := []string{"--server", server.URL, "--caller", "owner"}
	fullArgs = append(fullArgs, extraArgs...)
	set.Parse(fullArgs)

	return cli.NewContext(app, set, nil)
}

// testContextNoCaller creates a CLI context without a caller flag.
func testContextNoCaller(server *mockServer, extraArgs ...string) *cli.Context {
	app := &cli.App{
		Name:  "test",
		Flags: globalFlags(cliconfig.Default()),
	}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		f.Apply(set)
	}

	fullArgs := []string{"--server", server.URL}
	fullArgs = append(fullArgs, extraArgs...)
	set.Parse(fullArgs)

	return cli.NewContext(app, set, nil)
}
