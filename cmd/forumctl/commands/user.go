package commands

import (
	"fmt"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/spf13/cobra"
)

func newUserCmd(a *app) *cobra.Command {
	var fname, lname string

	cmd := &cobra.Command{
		Use:   "user [id]",
		Short: "Show a user by id or by --fname and --lname",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				u   *models.User
				err error
			)
			switch {
			case len(args) == 1:
				id, perr := parseID(args[0])
				if perr != nil {
					return perr
				}
				u, err = a.repos.Users.FindByID(cmd.Context(), id)
			case fname != "" && lname != "":
				u, err = a.repos.Users.FindByName(cmd.Context(), fname, lname)
			default:
				return fmt.Errorf("an id or both --fname and --lname are required")
			}
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("user not found")
			}
			return a.render(cmd.OutOrStdout(), u)
		},
	}
	cmd.Flags().StringVar(&fname, "fname", "", "First name")
	cmd.Flags().StringVar(&lname, "lname", "", "Last name")
	return cmd
}

func newKarmaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "karma <user-id>",
		Short: "Average likes per question asked by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := a.repos.Users.FindByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("user %d not found", id)
			}
			karma, err := a.repos.Users.AverageKarma(cmd.Context(), *u)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), karma)
		},
	}
}
