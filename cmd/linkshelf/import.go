package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/linkshelf/internal/content"
	"github.com/MrSnakeDoc/linkshelf/internal/sources/homepage"
)

var importCmd = &cobra.Command{
	Use:   "import-homepage",
	Short: "Convert a gethomepage services.yaml into a content file",
	Long: `Reads a gethomepage services.yaml and writes a linkshelf content file.
Groups become categories and services become resource cards with one
primary button, both in file order. --out files ending in .yaml or .yml
are written as YAML, other files as JSON; stdout gets YAML.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("in", "services.yaml", "gethomepage services file")
	importCmd.Flags().StringP("out", "o", "-", "output content file, - for YAML on stdout")
	importCmd.Flags().String("button", "Open", "text of the primary button of each card")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	button, _ := cmd.Flags().GetString("button")

	cfg, err := homepage.NewLoader(in).Load()
	if err != nil {
		return err
	}

	doc, err := homepage.Map(cfg, button)
	if err != nil {
		return err
	}

	var data []byte
	if out != "-" && content.FormatFor(out) == content.FormatJSON {
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	if out == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✅ imported %d categories into %s\n", doc.Categories.Len(), out)
	return nil
}
