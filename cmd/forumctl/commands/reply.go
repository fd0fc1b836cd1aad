package commands

import (
	"context"
	"fmt"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/spf13/cobra"
)

func (a *app) loadReply(ctx context.Context, arg string) (*models.Reply, error) {
	id, err := parseID(arg)
	if err != nil {
		return nil, err
	}
	r, err := a.repos.Replies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("reply %d not found", id)
	}
	return r, nil
}

func newReplyCmd(a *app) *cobra.Command {
	var parent bool
	cmd := &cobra.Command{
		Use:   "reply <id>",
		Short: "Show a reply, or with --parent the reply it answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.loadReply(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if parent {
				if r, err = a.repos.Replies.ParentReply(cmd.Context(), *r); err != nil {
					return err
				}
				if r == nil {
					return fmt.Errorf("parent reply not found")
				}
			}
			return a.render(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().BoolVar(&parent, "parent", false, "Show the parent reply instead")
	return cmd
}

func newChildrenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "children <reply-id>",
		Short: "List the direct replies to a reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.loadReply(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			children, err := a.repos.Replies.ChildReplies(cmd.Context(), *r)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), children)
		},
	}
}
