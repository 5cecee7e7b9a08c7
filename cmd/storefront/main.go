package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/01moynul/storefront/internal/config"
	"github.com/01moynul/storefront/internal/storefront"
)

func main() {
	config.LoadDotEnv()
	v := config.New()

	var timeout time.Duration
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the catalog from the terminal",
		Long:          "Loads the product listing once from the catalog service and renders it as a grid of cards.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			client := storefront.NewClient(v.GetString(config.KeyStorefrontAPIURL), &http.Client{Timeout: timeout})
			p := tea.NewProgram(storefront.NewModel(client, timeout), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
	root.Flags().String("api-url", "", "Catalog service base URL (env STOREFRONT_API_URL)")
	root.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout for the product request")
	_ = v.BindPFlag(config.KeyStorefrontAPIURL, root.Flags().Lookup("api-url"))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
