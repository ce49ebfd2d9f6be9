package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"quotedesk/backend/internal/domain/catalog"
	"quotedesk/backend/internal/domain/quote"
	"quotedesk/backend/internal/domain/quote/pdf"
	"quotedesk/backend/internal/domain/quote/pdf/gofpdf"
)

func newRenderCmd() *cobra.Command {
	var (
		inPath     string
		outDir     string
		numberMode string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a quote request to PDF without contacting the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if inPath != "" && inPath != "-" {
				f, err := os.Open(inPath)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			path, err := renderQuote(in, outDir, quote.NewNumberer(numberMode), gofpdf.New(nil), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "-", "Quote request JSON file, - for stdin")
	cmd.Flags().StringVar(&outDir, "out", ".", "Directory to write the PDF into")
	cmd.Flags().StringVar(&numberMode, "numbers", "timestamp", "Quote number format: timestamp or uuid")

	return cmd
}

// renderQuote builds the invoice described by the JSON in r and writes its
// PDF into dir. It returns the written path.
func renderQuote(r io.Reader, dir string, numbers quote.Numberer, gen pdf.Generator, now time.Time) (string, error) {
	var req quote.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return "", fmt.Errorf("decode quote request: %w", err)
	}
	inv, err := req.Invoice(catalog.Default(), now, numbers)
	if err != nil {
		return "", err
	}
	out, err := gen.Generate(inv)
	if err != nil {
		return "", fmt.Errorf("generate pdf: %w", err)
	}
	path := filepath.Join(dir, quote.FileName(inv))
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
