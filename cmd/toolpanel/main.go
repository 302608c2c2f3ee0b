// Command toolpanel searches a tool catalog file from the command line
// and can serve the same search over MCP.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panelforge/toolpanel/backend"
	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/mcpserver"
	"github.com/panelforge/toolpanel/panel"
	"github.com/panelforge/toolpanel/query"
)

var (
	catalogPath string
	useFullText bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "toolpanel",
	Short: "Search a hierarchical tool catalog",
	Long: "toolpanel loads a tool catalog file (YAML or JSON) and locates tools in it\n" +
		"by weighted ranked search or a local full-text index.",
	SilenceUsage: true,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Print tools matching the query, most relevant first",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := buildPanel()
		if err != nil {
			return err
		}
		defer cleanup()

		q := strings.Join(args, " ")
		limit, _ := cmd.Flags().GetInt("limit")
		sections, _ := cmd.Flags().GetBool("sections")

		if sections {
			box, err := p.FilterSections(cmd.Context(), q)
			if err != nil {
				return err
			}
			printSections(cmd, box)
			return nil
		}

		tools, err := p.FilterTools(cmd.Context(), q)
		if err != nil {
			return err
		}
		if limit > 0 && len(tools) > limit {
			tools = tools[:limit]
		}
		for _, t := range tools {
			cmd.Printf("%s\t%s\t%s\n", t.ID, t.Name, t.Description)
		}
		return nil
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <key=value>...",
	Short: "Print the query strings built from filter settings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := parseSettings(args)
		if err != nil {
			return err
		}
		view, _ := cmd.Flags().GetString("view")

		box := catalog.Toolbox{}
		if catalogPath != "" {
			box, err = catalog.LoadFile(catalogPath)
			if err != nil {
				return err
			}
		}

		cmd.Printf("simple:    %s\n", query.BuildSimple(settings))
		cmd.Printf("full-text: %s\n", query.BuildFullText(settings, view, box))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve catalog search over MCP on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := buildPanel()
		if err != nil {
			return err
		}
		defer cleanup()

		slog.Info("serving catalog over MCP", "catalog", catalogPath, "tools", len(p.Tools()))
		return mcpserver.Run(cmd.Context(), p)
	},
}

func buildPanel() (*panel.Panel, func(), error) {
	box, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		slog.Info("catalog loaded", "path", catalogPath, "entries", len(box))
	}

	opts := panel.Options{Toolbox: box}
	cleanup := func() {}
	if useFullText {
		ft, err := backend.NewFullTextSearcher(box)
		if err != nil {
			return nil, nil, err
		}
		opts.Searcher = ft
		cleanup = func() { _ = ft.Close() }
	}

	p, err := panel.New(opts)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return p, cleanup, nil
}

func parseSettings(args []string) (query.Settings, error) {
	settings := make(query.Settings, 0, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid filter %q, want key=value", arg)
		}
		if value == "true" {
			settings = append(settings, query.Setting{Key: key, Flag: true})
			continue
		}
		settings = append(settings, query.Setting{Key: key, Value: value})
	}
	return settings, nil
}

func printSections(cmd *cobra.Command, box catalog.Toolbox) {
	for _, n := range box {
		switch v := n.(type) {
		case catalog.Tool:
			cmd.Printf("%s\t%s\n", v.ID, v.Name)
		case catalog.Section:
			cmd.Printf("[%s] %s\n", v.ID, v.Name)
			for _, child := range v.Elems {
				if t, ok := child.(catalog.Tool); ok {
					cmd.Printf("  %s\t%s\n", t.ID, t.Name)
				}
			}
		}
	}
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "toolbox.yml", "catalog file to search")
	rootCmd.PersistentFlags().BoolVar(&useFullText, "fulltext", false, "search with the local full-text index")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log catalog details")

	searchCmd.Flags().Int("limit", 0, "maximum number of results, 0 for all")
	searchCmd.Flags().Bool("sections", false, "print the pruned section tree instead of a flat list")
	queryCmd.Flags().String("view", query.ViewDefault, "panel view for section expansion, e.g. ontology:edam_operations")

	rootCmd.AddCommand(searchCmd, queryCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
