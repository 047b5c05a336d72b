// Package mcp exposes the transformation pipeline as an MCP server so agents
// and editors can normalize markup or audit deprecated usage as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/espalier-ui/espalier/pkg/diag"
	"github.com/espalier-ui/espalier/pkg/ports"
	"github.com/espalier-ui/espalier/pkg/transform"
)

// TransformResponse is the structured output of the transform_markup tool.
type TransformResponse struct {
	Markup   string         `json:"markup" jsonschema_description:"The normalized markup"`
	Warnings []string       `json:"warnings" jsonschema_description:"Deprecation warnings for the input"`
	Counts   map[string]int `json:"counts" jsonschema_description:"Rewritten node counts by component kind"`
}

// LintResponse is the structured output of the lint_markup tool.
type LintResponse struct {
	Warnings []string       `json:"warnings" jsonschema_description:"Deprecation warnings for the input"`
	Counts   map[string]int `json:"counts" jsonschema_description:"Component node counts by kind"`
}

// Server wraps the engine configuration and exposes it as an MCP Server.
type Server struct {
	parser     ports.Parser
	serializer ports.Serializer
	cfg        transform.Config
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(parser ports.Parser, serializer ports.Serializer, cfg transform.Config, version string) *Server {
	s := &Server{
		parser:     parser,
		serializer: serializer,
		cfg:        cfg,
		mcpServer:  server.NewMCPServer("espalier-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
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

		fmt.Println("\nShutdown signal received, shutting down server...")
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

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: transform_markup
	transformTool := mcp.NewTool("transform_markup",
		mcp.WithDescription("Rewrite author-facing component markup (popover, tooltip, modal, trigger) into the canonical renderer shape."),
		mcp.WithString("markup", mcp.Required(), mcp.Description("The markup document to normalize")),
		mcp.WithOutputSchema[TransformResponse](),
	)
	s.mcpServer.AddTool(transformTool, mcp.NewStructuredToolHandler(s.handleTransform))

	// TOOL: lint_markup
	lintTool := mcp.NewTool("lint_markup",
		mcp.WithDescription("Report deprecated attributes and slots in component markup without rewriting it."),
		mcp.WithString("markup", mcp.Required(), mcp.Description("The markup document to audit")),
		mcp.WithOutputSchema[LintResponse](),
	)
	s.mcpServer.AddTool(lintTool, mcp.NewStructuredToolHandler(s.handleLint))
}

// Handler methods for structured tools

func (s *Server) handleTransform(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TransformResponse, error) {
	input, _ := args["markup"].(string)
	if input == "" {
		return TransformResponse{}, fmt.Errorf("markup is required")
	}

	markup, warnings, counts, err := s.run(input)
	if err != nil {
		return TransformResponse{}, err
	}
	return TransformResponse{Markup: markup, Warnings: warnings, Counts: counts}, nil
}

func (s *Server) handleLint(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (LintResponse, error) {
	input, _ := args["markup"].(string)
	if input == "" {
		return LintResponse{}, fmt.Errorf("markup is required")
	}

	_, warnings, counts, err := s.run(input)
	if err != nil {
		return LintResponse{}, err
	}
	return LintResponse{Warnings: warnings, Counts: counts}, nil
}

func (s *Server) run(input string) (string, []string, map[string]int, error) {
	root, err := s.parser.Parse(strings.NewReader(input))
	if err != nil {
		return "", nil, nil, fmt.Errorf("parse failed: %w", err)
	}

	collector := diag.NewCollector()
	eng := transform.New(s.cfg, collector)
	kindCounts := eng.Walk(root)

	var out strings.Builder
	if err := s.serializer.Serialize(&out, root); err != nil {
		return "", nil, nil, fmt.Errorf("serialize failed: %w", err)
	}

	warnings := make([]string, 0, len(collector.Warnings()))
	for _, w := range collector.Warnings() {
		warnings = append(warnings, w.String())
	}
	counts := make(map[string]int, len(kindCounts))
	for kind, n := range kindCounts {
		counts[kind.String()] = n
	}
	return out.String(), warnings, counts, nil
}

func (s *Server) registerResources() {
	// EXPOSE: espalier://config
	s.mcpServer.AddResource(mcp.NewResource("espalier://config", "Active Transformation Config",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "espalier://config",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
