package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hbnb/internal/facade"
	"hbnb/internal/seed"
)

func validateFixtureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-fixture <file>",
		Short: "Check a seed fixture against a scratch store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := seed.Load(args[0])
			if err != nil {
				return err
			}
			sum, err := seed.Apply(cmd.Context(), facade.New(), fx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d users, %d amenities, %d places, %d reviews\n",
				sum.Users, sum.Amenities, sum.Places, sum.Reviews)
			return nil
		},
	}
}
