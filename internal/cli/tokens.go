package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/langdetect"
	"github.com/yaklabco/goharper/pkg/parser/goldmark"
	"github.com/yaklabco/goharper/pkg/reporter"
)

type tokensFlags struct {
	frontend string
	format   string
	flavor   string
}

// tokenJSON is one token of the json output.
type tokenJSON struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

func newTokensCommand() *cobra.Command {
	flags := &tokensFlags{}

	cmd := &cobra.Command{
		Use:   "tokens [path]",
		Short: "Print the token stream of a document",
		Long: `Print every token of a document with its index, kind and byte span.

Reads standard input when no path is given or the path is "-". Markdown
syntax and code are reported as unlintable tokens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.frontend, "frontend", "auto", "document front end: auto, plain, markdown")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVar(&flags.flavor, "flavor", string(goldmark.FlavorGFM), "Markdown flavor: gfm, commonmark")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, flags *tokensFlags) error {
	frontend, ok := langdetect.ParseFrontend(flags.frontend)
	if !ok {
		return fmt.Errorf("unknown front end %q; valid: auto, plain, markdown", flags.frontend)
	}
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	var name string
	var content []byte
	if len(args) == 0 || args[0] == stdinArg {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = args[0]
		content, err = os.ReadFile(name)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if frontend == "" {
		frontend = langdetect.Detect(name, content)
	}

	doc := document.NewPlainEnglish(string(content))
	if frontend == langdetect.FrontendMarkdown {
		doc, err = document.New(goldmark.New(flags.flavor), string(content))
		if err != nil {
			return fmt.Errorf("parse markdown: %w", err)
		}
	}

	bw := bufio.NewWriter(cmd.OutOrStdout())
	if format == reporter.FormatJSON {
		err = writeTokensJSON(bw, doc)
	} else {
		err = writeTokensText(bw, doc)
	}
	if err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

func writeTokensText(w io.Writer, doc *document.Document) error {
	for idx, tok := range doc.Tokens() {
		_, err := fmt.Fprintf(w, "%4d  %-12s [%d,%d)  %s\n",
			idx, tok.Kind, tok.Span.Start, tok.Span.End, strconv.Quote(doc.TokenText(tok)))
		if err != nil {
			return fmt.Errorf("write tokens: %w", err)
		}
	}
	return nil
}

func writeTokensJSON(w io.Writer, doc *document.Document) error {
	tokens := make([]tokenJSON, 0, doc.TokenCount())
	for idx, tok := range doc.Tokens() {
		tokens = append(tokens, tokenJSON{
			Index: idx,
			Kind:  tok.Kind.String(),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  doc.TokenText(tok),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tokens); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return nil
}
