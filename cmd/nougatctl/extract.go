package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nougat/pkg/client"
)

func extractCmd(newClient func() *client.Client) *cobra.Command {
	var out string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Upload a PDF and print the extracted LaTeX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			latex, err := newClient().ExtractFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			text := latex
			if asJSON {
				b, _ := json.MarshalIndent(client.Extraction{LaTeX: latex}, "", "  ")
				text = string(b) + "\n"
			}

			if out != "" {
				return os.WriteFile(out, []byte(text), 0o644)
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON response")
	return cmd
}
