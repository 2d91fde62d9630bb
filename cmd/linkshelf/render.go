package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/linkshelf/internal/content"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/render"
	"github.com/MrSnakeDoc/linkshelf/internal/theme"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page once to a static HTML file",
	Long: `Renders the directory page from a content file without starting the
server. The exported page has no theme toggle; pick the theme with --theme.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("content", "", "content file (.json, .yaml or .yml), empty = embedded sample")
	renderCmd.Flags().StringP("out", "o", "-", "output file, - for stdout")
	renderCmd.Flags().String("theme", theme.Light, "theme of the exported page (light|dark)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	contentFile, _ := cmd.Flags().GetString("content")
	out, _ := cmd.Flags().GetString("out")
	mode, _ := cmd.Flags().GetString("theme")

	if mode != theme.Light && mode != theme.Dark {
		return fmt.Errorf("invalid --theme %q, want light or dark", mode)
	}

	doc, err := content.NewLoader(contentFile).Load()
	if err != nil {
		return err
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}

	root := theme.NewClassList()
	ctrl := theme.New(context.Background(), theme.Static(mode), nil, root, logger.Nop())
	page := render.BuildPage(content.NewAccessor(doc), ctrl.IsDark(), root.String())

	if out == "-" {
		return renderer.Render(cmd.OutOrStdout(), page)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := writeAndClose(f, func(w io.Writer) error { return renderer.Render(w, page) }); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✅ wrote %s (%d categories)\n", out, doc.Categories.Len())
	return nil
}

// writeAndClose runs write against wc and closes it. A write error wins
// over the close error; a failed close is reported on its own.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
