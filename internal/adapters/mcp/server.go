// Package mcp exposes the diagram pipeline as a Model Context Protocol
// server, so AI agents can render flow documentation as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/studiomap"
	"github.com/aretw0/studiomap/internal/adapters/twilio"
	"github.com/aretw0/studiomap/pkg/flow"
)

// Server wraps the generator and a flow source as an MCP Server.
type Server struct {
	source    twilio.Source
	generator *studiomap.Generator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(source twilio.Source, generator *studiomap.Generator) *Server {
	s := &Server{
		source:    source,
		generator: generator,
		mcpServer: server.NewMCPServer("studiomap-mcp", studiomap.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: render_diagram
	s.mcpServer.AddTool(mcp.NewTool("render_diagram",
		mcp.WithDescription("Render a Studio flow as a fenced Mermaid flowchart for the given trigger type."),
		mcp.WithString("flow_sid", mcp.Required(), mcp.Description("The SID of the Studio flow")),
		mcp.WithString("trigger", mcp.Required(), mcp.Description("Trigger type: incoming-message, incoming-call, rest-api or subflow")),
		mcp.WithString("overrides", mcp.Description("JSON object mapping state ids to friendly names (optional)")),
	), s.handleRenderDiagram)

	// TOOL: list_states
	s.mcpServer.AddTool(mcp.NewTool("list_states",
		mcp.WithDescription("List the state ids reachable from a trigger type, as an id-keyed override template."),
		mcp.WithString("flow_sid", mcp.Required(), mcp.Description("The SID of the Studio flow")),
		mcp.WithString("trigger", mcp.Required(), mcp.Description("Trigger type: incoming-message, incoming-call, rest-api or subflow")),
	), s.handleListStates)
}

func (s *Server) resolve(ctx context.Context, request mcp.CallToolRequest) (*flow.Definition, flow.TriggerType, error) {
	sid, err := request.RequireString("flow_sid")
	if err != nil {
		return nil, "", err
	}
	triggerArg, err := request.RequireString("trigger")
	if err != nil {
		return nil, "", err
	}
	trigger, err := flow.ParseTriggerType(triggerArg)
	if err != nil {
		return nil, "", err
	}

	def, err := s.source.FetchDefinition(ctx, sid)
	if err != nil {
		return nil, "", fmt.Errorf("fetch flow %s: %w", sid, err)
	}
	return def, trigger, nil
}

func (s *Server) handleRenderDiagram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	def, trigger, err := s.resolve(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	names := map[string]string{}
	if raw := request.GetString("overrides", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("overrides is not a JSON object: %v", err)), nil
		}
	}

	diagram, err := s.generator.Generate(def, trigger, names)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	return mcp.NewToolResultText(diagram), nil
}

func (s *Server) handleListStates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	def, trigger, err := s.resolve(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	template, err := s.generator.StatesTemplate(def, trigger)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list states failed: %v", err)), nil
	}

	jsonBytes, _ := json.Marshal(template)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
