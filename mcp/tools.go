package mcp

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/mcpdocs/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

func InitTools(store *api.Store) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(ReadDocument(store)))
	tools = append(tools, newServerTool(EditDocument(store)))

	return tools
}

// decodeArguments copies the raw tool arguments into dst and validates it.
// Pointer fields let empty strings through while still rejecting absent ones.
func decodeArguments(ctx context.Context, raw any, dst any) error {
	if err := mapstructure.Decode(raw, dst); err != nil {
		return err
	}
	return validate.StructCtx(ctx, dst)
}

func ReadDocument(store *api.Store) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"read_doc_contents",
			mcp.WithDescription("This tool reads the contents of the document and returns in a string"),
			mcp.WithString("doc_id", mcp.Required(), mcp.Description("The ID of the document to read.")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				DocID *string `mapstructure:"doc_id" validate:"required"`
			}
			var args ToolArguments
			if err := decodeArguments(ctx, req.GetArguments(), &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			content, err := store.Read(*args.DocID)
			if err != nil {
				return mcp.NewToolResultError(api.UserMessage(err)), nil
			}

			return mcp.NewToolResultText(content), nil
		}
}

func EditDocument(store *api.Store) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"edit_document",
			mcp.WithDescription("This tool edits a document by replacing a string in the document's content with a new string."),
			mcp.WithString("doc_id", mcp.Required(), mcp.Description("The ID of the document to update.")),
			mcp.WithString("old_string", mcp.Required(), mcp.Description("The old string to edit. Must match exactly, including whitespaces.")),
			mcp.WithString("new_string", mcp.Required(), mcp.Description("The new string to edit.")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				DocID     *string `mapstructure:"doc_id" validate:"required"`
				OldString *string `mapstructure:"old_string" validate:"required"`
				NewString *string `mapstructure:"new_string" validate:"required"`
			}
			var args ToolArguments
			if err := decodeArguments(ctx, req.GetArguments(), &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := store.Edit(*args.DocID, *args.OldString, *args.NewString); err != nil {
				return mcp.NewToolResultError(api.UserMessage(err)), nil
			}

			return &mcp.CallToolResult{Content: []mcp.Content{}}, nil
		}
}
