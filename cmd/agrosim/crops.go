package main

import (
	"fmt"

	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/spf13/cobra"
)

func newCropsCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "crops",
		Short: "List the crop catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			crops := a.crops.List()
			if category != "" {
				c := domain.Category(category)
				if !c.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				crops = a.crops.ByCategory(c)
			}
			return a.renderer.Crops(cmd.OutOrStdout(), crops)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list one category (cereale|legume|tubercule|oleagineux|fruit)")

	return cmd
}
