package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"nougat/pkg/client"
)

func defaultURL() string {
	if v := os.Getenv("NOUGAT_URL"); v != "" {
		return v
	}
	return "http://localhost:8000"
}

func rootCmd() *cobra.Command {
	var baseURL string
	var timeout time.Duration

	root := &cobra.Command{
		Use:           "nougatctl",
		Short:         "Talk to a nougat-extraction service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&baseURL, "url", defaultURL(), "service base URL (env NOUGAT_URL)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "request timeout")

	newClient := func() *client.Client {
		c := client.New(baseURL)
		c.Timeout = timeout
		return c
	}

	root.AddCommand(statusCmd(newClient))
	root.AddCommand(extractCmd(newClient))
	return root
}
