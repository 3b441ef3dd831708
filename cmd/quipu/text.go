package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DAAT-RI/quipu/internal/category"
	"github.com/DAAT-RI/quipu/internal/domain"
)

func normalizeCmd() *cobra.Command {
	var key bool

	cmd := &cobra.Command{
		Use:   "normalize <text>...",
		Short: "Print the alias form (or the category key) of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				out := domain.NormalizeName(arg)
				if key {
					out = domain.NormalizeKey(arg)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&key, "key", false, "print the category key instead of the alias form")

	return cmd
}

func variantsCmd() *cobra.Command {
	var minLen int

	cmd := &cobra.Command{
		Use:   "variants <term>",
		Short: "Print the accent variants a search term expands into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term, ok := domain.SearchTerm(strings.Join(args, " "), minLen)
			if !ok {
				return fmt.Errorf("term must have at least %d characters", minLen)
			}
			for _, v := range domain.SearchVariants(term) {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minLen, "min", domain.MinSearchLength, "minimum term length")

	return cmd
}

func categoriesCmd() *cobra.Command {
	var (
		source string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the static category configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := category.ParseSource(source)
			if err != nil {
				return err
			}
			registry, err := category.Default()
			if err != nil {
				return err
			}
			list := registry.List(src)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ORDER\tKEY\tLABEL\tICON\tCOLOR")
			for _, c := range list {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.Order, c.Key, c.Label, c.Icon, c.Color)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&source, "source", string(category.SourcePlan), "plan or declaration")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
