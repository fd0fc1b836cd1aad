package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newQuestionCmd(a *app) *cobra.Command {
	var authorID int64

	cmd := &cobra.Command{
		Use:   "question [id]",
		Short: "Show a question, or every question of --author",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				if authorID <= 0 {
					return fmt.Errorf("an id or --author is required")
				}
				qs, err := a.repos.Questions.FindByAuthorID(ctx, authorID)
				if err != nil {
					return err
				}
				return a.render(cmd.OutOrStdout(), qs)
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			q, err := a.repos.Questions.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if q == nil {
				return fmt.Errorf("question %d not found", id)
			}
			return a.render(cmd.OutOrStdout(), q)
		},
	}
	cmd.Flags().Int64Var(&authorID, "author", 0, "List the questions asked by this user id")
	return cmd
}

func newLikesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "likes <question-id>",
		Short: "Count the likes of a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := a.repos.Likes.NumLikesForQuestionID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), n)
		},
	}
}

func newMostFollowedCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "most-followed",
		Short: "Rank questions by number of followers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := a.repos.Questions.MostFollowed(cmd.Context(), n)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), qs)
		},
	}
	cmd.Flags().IntVarP(&n, "limit", "n", 10, "Number of questions to show")
	return cmd
}

func newMostLikedCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "most-liked",
		Short: "Rank questions by number of likes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := a.repos.Questions.MostLiked(cmd.Context(), n)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), qs)
		},
	}
	cmd.Flags().IntVarP(&n, "limit", "n", 10, "Number of questions to show")
	return cmd
}
