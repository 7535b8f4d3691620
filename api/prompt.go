package api

import "fmt"

// EditToolName is the tool agents are told to call when rewriting a document
const EditToolName = "edit_document"

const formatPromptTemplate = `Your goal is to reformat a document to be written with markdown syntax.

The id of the document you need to reformat is:
<document_id>
%s
</document_id>

Add in headers, bullet points, tables, etc as necessary. Feel free to add in extra text, but don't change the meaning of the report.
Use the '%s' tool to edit the document. After the document has been edited, respond with the final version of the doc. Don't explain your changes.
`

const summarisePromptTemplate = `Your goal is to summarise the contents of the document:

The id of the document you need to summarise is:
<document_id>
%s
</document_id>
`

// FormatPrompt builds the instruction asking an agent to rewrite docID as markdown.
// docID is not checked against any store.
func FormatPrompt(docID string) string {
	return fmt.Sprintf(formatPromptTemplate, docID, EditToolName)
}

// SummarisePrompt builds the instruction asking an agent to summarise docID
func SummarisePrompt(docID string) string {
	return fmt.Sprintf(summarisePromptTemplate, docID)
}
