package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const nearLimit = 5

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var categoriesOnly bool
	var prefix string
	var asJSON bool
	var near string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the sound event names files can resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			if near = strings.TrimSpace(near); near != "" {
				names := cat.Nearest(near, nearLimit)
				if asJSON {
					return writeJSON(cmd, names)
				}
				out := cmd.OutOrStdout()
				if cat.Contains(near) {
					fmt.Fprintf(out, "%s is in the catalog\n", near)
				}
				rows := make([][]string, 0, len(names))
				for i, name := range names {
					rows = append(rows, []string{strconv.Itoa(i + 1), name})
				}
				fmt.Fprintln(out, renderTable([]string{"#", "Closest events"}, rows, []columnAlignment{alignRight, alignLeft}))
				return nil
			}

			if categoriesOnly {
				categories := cat.Categories()
				counts := make(map[string]int, len(categories))
				for _, name := range cat.Names() {
					category, _, _ := strings.Cut(name, ".")
					counts[category]++
				}
				if asJSON {
					return writeJSON(cmd, counts)
				}
				rows := make([][]string, 0, len(categories))
				for _, category := range categories {
					rows = append(rows, []string{category, categoryLabel(category), strconv.Itoa(counts[category])})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Category", "Label", "Events"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight},
				))
				return nil
			}

			names := filterPrefix(cat.Names(), prefix)
			if asJSON {
				return writeJSON(cmd, names)
			}
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				category, _, _ := strings.Cut(name, ".")
				rows = append(rows, []string{name, category})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Event", "Category"}, rows, nil))
			fmt.Fprintf(out, "%d of %d events\n", len(names), cat.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&categoriesOnly, "categories", false, "List categories with their event counts")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list events starting with this prefix")
	cmd.Flags().StringVar(&near, "near", "", "List the events closest to this name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func filterPrefix(names []string, prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return names
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
