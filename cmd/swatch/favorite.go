package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoriteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "Read or change the favorite color on a running server",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the favorite color",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				st, err := a.client().Favorite(cmd.Context())
				if err != nil {
					return err
				}
				if !st.Set {
					fmt.Fprintln(cmd.OutOrStdout(), "Favorite color not set yet.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), st.Color)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <color>",
			Short: "Set the favorite color",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := a.client().SetFavorite(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Favorite color set to %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func newColorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "color <color>",
		Short: "Print the HTML block the server renders for a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := a.client().ColorBlock(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), body)
			return nil
		},
	}
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client().Health(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
