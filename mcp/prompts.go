package mcp

import (
	"context"

	"github.com/ka2n/mcpdocs/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func InitPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		newServerPrompt(FormatDocumentPrompt()),
		newServerPrompt(SummariseDocumentPrompt()),
	}
}

func newServerPrompt(prompt mcp.Prompt, handler server.PromptHandlerFunc) server.ServerPrompt {
	return server.ServerPrompt{
		Prompt:  prompt,
		Handler: handler,
	}
}

type promptArguments struct {
	DocID *string `mapstructure:"doc_id" validate:"required"`
}

// userPrompt wraps text as the single user message of a prompt result
func userPrompt(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}

func FormatDocumentPrompt() (prompt mcp.Prompt, handler server.PromptHandlerFunc) {
	const description = "This tool rewrites the document in Markdown format"
	return mcp.NewPrompt(
			"format",
			mcp.WithPromptDescription(description),
			mcp.WithArgument("doc_id", mcp.RequiredArgument(), mcp.ArgumentDescription("Id of the document to format")),
		), func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			var args promptArguments
			if err := decodeArguments(ctx, req.Params.Arguments, &args); err != nil {
				return nil, err
			}
			return userPrompt(description, api.FormatPrompt(*args.DocID)), nil
		}
}

func SummariseDocumentPrompt() (prompt mcp.Prompt, handler server.PromptHandlerFunc) {
	const description = "This tool summarises the contents of the document"
	return mcp.NewPrompt(
			"summarise",
			mcp.WithPromptDescription(description),
			mcp.WithArgument("doc_id", mcp.RequiredArgument(), mcp.ArgumentDescription("Id of the document to summarise")),
		), func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			var args promptArguments
			if err := decodeArguments(ctx, req.Params.Arguments, &args); err != nil {
				return nil, err
			}
			return userPrompt(description, api.SummarisePrompt(*args.DocID)), nil
		}
}
