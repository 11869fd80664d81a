package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vijay-prabhu/disha/internal/catalog"
	"github.com/vijay-prabhu/disha/internal/config"
	"github.com/vijay-prabhu/disha/internal/database"
	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/logging"
	"github.com/vijay-prabhu/disha/internal/scholarship"
	"github.com/vijay-prabhu/disha/internal/scoring"
)

// protocolVersion is the MCP revision this server speaks
const protocolVersion = "2024-11-05"

// Server implements an MCP server over stdio
type Server struct {
	db         *database.DB
	config     *config.Config
	logger     *logging.Logger
	version    string
	now        func() time.Time
	catalog    *catalog.Catalog
	scorer     *scoring.Scorer
	aggregator *holistic.Aggregator
	engine     *scholarship.Engine
	handlers   map[string]ToolHandler
}

// Options configure a Server
type Options struct {
	Version string
	Logger  *logging.Logger
	Now     func() time.Time // defaults to time.Now
}

// ToolHandler is a function that handles a tool call
type ToolHandler func(ctx context.Context, params json.RawMessage) (any, error)

// JSON-RPC 2.0 types
type jsonRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonRPCResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

type initializeResult struct {
	ProtocolVersion string `json:"protocolVersion"`
	Capabilities    struct {
		Tools     struct{} `json:"tools"`
		Resources struct{} `json:"resources"`
	} `json:"capabilities"`
	ServerInfo struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"serverInfo"`
}

type toolsListResult struct {
	Tools []Tool `json:"tools"`
}

type callToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type callToolResult struct {
	Content []contentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

type contentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// New creates a new MCP server. The sports catalog and the deadline
// engine are built once from cfg.
func New(db *database.DB, cfg *config.Config, opts Options) (*Server, error) {
	c := catalog.Sports()
	if cfg.Scoring.CatalogPath != "" {
		var err error
		if c, err = catalog.LoadFile(cfg.Scoring.CatalogPath); err != nil {
			return nil, err
		}
	}

	engine, err := scholarship.NewEngine(cfg.Deadlines.Engine())
	if err != nil {
		return nil, err
	}

	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{
		db:         db,
		config:     cfg,
		logger:     opts.Logger,
		version:    opts.Version,
		now:        opts.Now,
		catalog:    c,
		scorer:     scoring.NewScorer(cfg.Scoring.Scorer()),
		aggregator: holistic.New(cfg.Holistic.Aggregator()),
		engine:     engine,
		handlers:   make(map[string]ToolHandler),
	}
	s.registerHandlers()
	return s, nil
}

// Start runs the MCP server on stdio
func (s *Server) Start(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve reads newline-delimited requests from r and writes responses to w
// until r is exhausted or ctx is cancelled
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	s.logger.Info("mcp server started", "version", s.version)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read error: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		response := s.handleMessage(ctx, line)
		if response != nil {
			output, err := json.Marshal(response)
			if err != nil {
				s.logger.Error("failed to encode response", "error", err)
				continue
			}
			if _, err := fmt.Fprintln(w, string(output)); err != nil {
				return fmt.Errorf("write error: %w", err)
			}
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, msg string) *jsonRPCResponse {
	var req jsonRPCRequest
	if err := json.Unmarshal([]byte(msg), &req); err != nil {
		return errorResponse(nil, codeParseError, "Parse error")
	}

	if req.ID != nil {
		ctx = logging.WithRequestID(ctx, fmt.Sprint(req.ID))
	}
	s.logger.FromContext(ctx).Debug("mcp request", "method", req.Method)

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "initialized", "notifications/initialized":
		// Notification, no response
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "resources/list":
		return s.handleResourcesList(req)
	case "resources/read":
		return s.handleResourcesRead(ctx, req)
	default:
		return errorResponse(req.ID, codeMethodNotFound, "Method not found")
	}
}

func errorResponse(id any, code int, message string) *jsonRPCResponse {
	return &jsonRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message},
	}
}

func (s *Server) handleInitialize(req jsonRPCRequest) *jsonRPCResponse {
	result := initializeResult{
		ProtocolVersion: protocolVersion,
	}
	result.ServerInfo.Name = "disha"
	result.ServerInfo.Version = s.version

	return &jsonRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}

func (s *Server) handleToolsList(req jsonRPCRequest) *jsonRPCResponse {
	return &jsonRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  toolsListResult{Tools: ToolDefinitions},
	}
}

func (s *Server) handleToolsCall(ctx context.Context, req jsonRPCRequest) *jsonRPCResponse {
	var params callToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params")
	}

	handler, ok := s.handlers[params.Name]
	if !ok {
		return errorResponse(req.ID, codeInvalidParams, fmt.Sprintf("Unknown tool: %s", params.Name))
	}

	result, err := handler(ctx, params.Arguments)
	if err != nil {
		s.logger.FromContext(ctx).Warn("tool call failed", "tool", params.Name, "error", err)
		return &jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: callToolResult{
				Content: []contentItem{{Type: "text", Text: err.Error()}},
				IsError: true,
			},
		}
	}

	// Convert result to JSON text
	var text string
	if str, ok := result.(string); ok {
		text = str
	} else {
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")
		text = string(jsonBytes)
	}

	return &jsonRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: callToolResult{
			Content: []contentItem{{Type: "text", Text: text}},
		},
	}
}

func (s *Server) handleResourcesList(req jsonRPCRequest) *jsonRPCResponse {
	return &jsonRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  resourcesListResult{Resources: ResourceDefinitions},
	}
}

func (s *Server) handleResourcesRead(ctx context.Context, req jsonRPCRequest) *jsonRPCResponse {
	var params readResourceParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params")
	}

	text, err := s.handleReadResource(ctx, params.URI)
	if err != nil {
		return errorResponse(req.ID, codeInvalidParams, err.Error())
	}

	return &jsonRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: readResourceResult{
			Contents: []resourceContent{
				{
					URI:      params.URI,
					MimeType: "text/plain",
					Text:     text,
				},
			},
		},
	}
}
