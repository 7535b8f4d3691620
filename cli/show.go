package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func (a *app) showCmd() *cobra.Command {
	format := formatFlag{Value: formatAuto}
	var usePager bool

	cmd := &cobra.Command{
		Use:   "show <doc_id>",
		Short: "Print the contents of a document",
		Long: `Print the contents of a document.

With --format=markdown the content is rendered for the terminal. The default,
auto, renders only when stdout is a terminal.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return failure.New(InvalidArguments,
					failure.Message(fmt.Sprintf("show requires 1 argument, but received %d", len(args))),
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			docID := args[0]
			content, err := store.Fetch(docID)
			if err != nil {
				return failure.Wrap(err)
			}

			out := cmd.OutOrStdout()
			if shouldRender(format.Value, out) {
				content, err = renderMarkdown(content, a.cfg.WordWrap)
				if err != nil {
					return err
				}
			}

			if usePager {
				if err := RunPager(docID, content); err != nil {
					return failure.Wrap(err)
				}
				return nil
			}

			fmt.Fprintln(out, content)
			return nil
		},
	}

	cmd.Flags().VarP(&format, "format", "f", "Output format (auto, raw, markdown)")
	cmd.Flags().BoolVarP(&usePager, "pager", "p", false, "Display the document in an interactive pager")
	return cmd
}

// shouldRender reports whether content written to w is rendered as markdown
func shouldRender(format outputFormat, w io.Writer) bool {
	switch format {
	case formatMarkdown:
		return true
	case formatRaw:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderMarkdown renders content with glamour
func renderMarkdown(content string, wordWrap int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", failure.Wrap(err, failure.WithCode(RenderFailed))
	}

	out, err := renderer.Render(content)
	if err != nil {
		return "", failure.Wrap(err, failure.WithCode(RenderFailed))
	}
	return out, nil
}
