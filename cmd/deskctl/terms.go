package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/deskkit/svc/terms"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Inspect terms and policy documents",
}

var flagTermsType string

var termsLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the latest published terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := termsSvc.Latest(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s (v%s)\n\n%s\n", doc.Title, doc.Version, doc.Content)
		return nil
	},
}

var termsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List terms or policy documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := termsSvc.List(cmd.Context(), terms.DocType(flagTermsType))
		if err != nil {
			return err
		}

		for _, doc := range docs {
			fmt.Printf("%s\t%s\tv%s\t%s\n", doc.ID, doc.Type, doc.Version, doc.Title)
		}
		return nil
	},
}

func init() {
	termsListCmd.Flags().StringVar(&flagTermsType, "type", string(terms.DocTypeTerms), "document type (terms | privacy-policy)")

	termsCmd.AddCommand(termsLatestCmd)
	termsCmd.AddCommand(termsListCmd)
}
