package main

import (
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/simp-lee/shopadmin/internal/app"
	"github.com/simp-lee/shopadmin/internal/config"
	"github.com/simp-lee/shopadmin/internal/module/product"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "shopadmin",
		Short:         "Shop admin web console",
		SilenceErrors: true,
		SilenceUsage:  true,
		// Without a subcommand the server starts, as "serve" does.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "path to configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(configPath)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "routes",
		Short: "Print the page route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return printRoutes(cmd.OutOrStdout(), cfg)
		},
	})

	return root
}

func serve(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	return a.Run()
}

func printRoutes(w io.Writer, cfg *config.Config) error {
	table, err := app.NewRouteTable(product.NewClient(cfg.API.BaseURL))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tTEMPLATE")
	for _, r := range table.Routes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Path, r.View.Template())
	}
	return tw.Flush()
}

