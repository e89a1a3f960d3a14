package cli

import (
	"context"

	domainerrors "snapgram/internal/domain/errors"

	"github.com/spf13/cobra"
)

func (c *cli) newSaveCmd() *cobra.Command {
	var toggle bool

	cmd := &cobra.Command{
		Use:   "save <post-id>",
		Short: "Save a post for the signed-in user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, "save", func(ctx context.Context) (any, error) {
				me, err := c.client.GetCurrentUser(ctx)
				if err != nil {
					return nil, err
				}
				postID := args[0]

				if !toggle {
					record, err := c.client.SavePost(ctx, me.ID, postID)
					if err != nil {
						return nil, err
					}

					return newSaveView(true, record), nil
				}

				existing, err := c.findSave(ctx, me.ID, postID)
				if err != nil {
					return nil, err
				}
				out, err := c.client.ToggleSave(ctx, me.ID, postID, existing)
				if err != nil {
					return nil, err
				}

				return newSaveView(out.Saved, out.Record), nil
			})
		},
	}
	cmd.Flags().BoolVar(&toggle, "toggle", false, "Unsave instead when the post is already saved")

	return cmd
}

func (c *cli) newUnsaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsave <post-id>",
		Short: "Remove a post from the signed-in user's saves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, "unsave", func(ctx context.Context) (any, error) {
				me, err := c.client.GetCurrentUser(ctx)
				if err != nil {
					return nil, err
				}

				recordID, err := c.findSave(ctx, me.ID, args[0])
				if err != nil {
					return nil, err
				}
				if recordID == "" {
					return nil, domainerrors.ErrNotFound.WithDetails("post is not saved")
				}

				if err := c.client.DeleteSavedPost(ctx, me.ID, recordID); err != nil {
					return nil, err
				}

				return newSaveView(false, nil), nil
			})
		},
	}
}

func (c *cli) newSavedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List the signed-in user's saved posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, "saved", func(ctx context.Context) (any, error) {
				me, err := c.client.GetCurrentUser(ctx)
				if err != nil {
					return nil, err
				}

				records, err := c.client.GetSavedPosts(ctx, me.ID)
				if err != nil {
					return nil, err
				}

				views := make([]savedRecordView, 0, len(records))
				for _, record := range records {
					views = append(views, newSavedRecordView(record))
				}

				return views, nil
			})
		},
	}
}

// findSave returns the id of userID's first record for postID, or "".
func (c *cli) findSave(ctx context.Context, userID, postID string) (string, error) {
	records, err := c.client.GetSavedPosts(ctx, userID)
	if err != nil {
		return "", err
	}

	for _, record := range records {
		if record.PostID == postID {
			return record.ID, nil
		}
	}

	return "", nil
}
