package mcp

import (
	"github.com/ka2n/mcpdocs/api"
	"github.com/ka2n/mcpdocs/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultServerName is the implementation name advertised to clients
const DefaultServerName = "DocumentMCP"

// Server represents the MCP server for mcpdocs
type Server struct {
	server *server.MCPServer
	store  *api.Store
}

type options struct {
	name string
}

// Option configures a Server
type Option func(*options)

// WithName overrides the implementation name advertised to clients
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// NewServer creates a new MCP server instance serving store
func NewServer(store *api.Store, opts ...Option) *Server {
	o := options{name: DefaultServerName}
	for _, opt := range opts {
		opt(&o)
	}

	s := server.NewMCPServer(o.name, api.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithHooks(newHooks()),
		server.WithRecovery(),
	)

	registerTools(s, store)
	registerResources(s, store)
	registerPrompts(s)

	return &Server{
		server: s,
		store:  store,
	}
}

// MCPServer returns the underlying protocol server
func (s *Server) MCPServer() *server.MCPServer {
	return s.server
}

// Run starts the MCP server on stdin/stdout
func (s *Server) Run() error {
	log.Debug("serving MCP over stdio", "documents", s.store.Len())
	return server.ServeStdio(s.server, server.WithErrorLogger(log.StdLogger()))
}

// registerTools registers all available tools with the MCP server
func registerTools(s *server.MCPServer, store *api.Store) {
	tools := InitTools(store)
	s.AddTools(tools...)
}

// registerResources registers the document listing and the per-document template
func registerResources(s *server.MCPServer, store *api.Store) {
	s.AddResource(ListDocuments(store))
	s.AddResourceTemplate(FetchDocument(store))
}

// registerPrompts registers the prompt templates
func registerPrompts(s *server.MCPServer) {
	for _, p := range InitPrompts() {
		s.AddPrompt(p.Prompt, p.Handler)
	}
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
