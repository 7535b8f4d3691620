package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/ka2n/mcpdocs/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/morikuni/failure/v2"
)

const (
	documentsURI        = "docs://documents"
	documentURIPrefix   = documentsURI + "/"
	documentURITemplate = documentURIPrefix + "{doc_id}"
)

// ErrorCode defines error types for MCP request handling
type ErrorCode string

const (
	// ErrInvalidResourceURI represents a resource URI that does not name a document
	ErrInvalidResourceURI ErrorCode = "InvalidResourceURI"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// ListDocuments serves the JSON array of document ids
func ListDocuments(store *api.Store) (resource mcp.Resource, handler server.ResourceHandlerFunc) {
	return mcp.NewResource(
			documentsURI,
			"list_docs",
			mcp.WithResourceDescription("Ids of all documents in the store"),
			mcp.WithMIMEType("application/json"),
		), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			b, err := json.Marshal(store.ListIDs())
			if err != nil {
				return nil, err
			}

			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(b),
				},
			}, nil
		}
}

// FetchDocument serves the raw content of a single document
func FetchDocument(store *api.Store) (template mcp.ResourceTemplate, handler server.ResourceTemplateHandlerFunc) {
	return mcp.NewResourceTemplate(
			documentURITemplate,
			"fetch_doc",
			mcp.WithTemplateDescription("Contents of a single document"),
			mcp.WithTemplateMIMEType("text/plain"),
		), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			docID, err := documentIDFromURI(req.Params.URI)
			if err != nil {
				return nil, errors.New(api.UserMessage(err))
			}

			content, err := store.Fetch(docID)
			if err != nil {
				return nil, errors.New(api.UserMessage(err))
			}

			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     content,
				},
			}, nil
		}
}

// documentIDFromURI extracts the document id from docs://documents/{doc_id}
func documentIDFromURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, documentURIPrefix)
	if !ok || rest == "" {
		return "", failure.New(ErrInvalidResourceURI,
			failure.Message("Resource URI does not name a document"),
			failure.Context{
				"uri": uri,
			},
		)
	}

	docID, err := url.PathUnescape(rest)
	if err != nil {
		return "", failure.Wrap(err, failure.WithCode(ErrInvalidResourceURI),
			failure.Message("Resource URI does not name a document"),
			failure.Context{
				"uri": uri,
			},
		)
	}
	return docID, nil
}
