package cli

import (
	"context"
	"strings"

	"snapgram/internal/domain/entity"
	"snapgram/internal/usecase"

	"github.com/spf13/cobra"
)

type postFlags struct {
	image    string
	caption  string
	location string
	tags     string
}

func (f *postFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.image, "image", "", "Path of the image file")
	cmd.Flags().StringVar(&f.caption, "caption", "", "Caption")
	cmd.Flags().StringVar(&f.location, "location", "", "Location")
	cmd.Flags().StringVar(&f.tags, "tags", "", "Comma-separated tags")
}

func (c *cli) newFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "List recent posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, "feed", func(ctx context.Context) (any, error) {
				posts, err := c.client.GetRecentPosts(ctx)
				if err != nil {
					return nil, err
				}

				return newPostViews(posts), nil
			})
		},
	}
}

func (c *cli) newPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create, read, edit and delete posts",
	}

	cmd.AddCommand(
		c.newPostCreateCmd(),
		c.newPostGetCmd(),
		c.newPostEditCmd(),
		c.newPostDeleteCmd(),
		c.newPostListCmd(),
	)

	return cmd
}

func (c *cli) newPostCreateCmd() *cobra.Command {
	flags := &postFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a post with one image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, "post.create", func(ctx context.Context) (any, error) {
				me, err := c.client.GetCurrentUser(ctx)
				if err != nil {
					return nil, err
				}

				input := &usecase.CreatePostInput{
					CreatorID: me.ID,
					Caption:   flags.caption,
					Location:  flags.location,
					Tags:      flags.tags,
				}
				if flags.image != "" {
					file, closeFile, err := openImage(flags.image)
					if err != nil {
						return nil, err
					}
					defer closeFile()
					input.Files = []usecase.File{file}
				}

				post, err := c.client.CreatePost(ctx, input)
				if err != nil {
					return nil, err
				}

				return newPostView(post), nil
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *cli) newPostGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <post-id>",
		Short: "Show a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, "post.get", func(ctx context.Context) (any, error) {
				post, err := c.client.GetPostByID(ctx, args[0])
				if err != nil {
					return nil, err
				}

				return newPostView(post), nil
			})
		},
	}
}

// newPostEditCmd changes only the fields whose flags were given. Passing
// --image replaces the image.
func (c *cli) newPostEditCmd() *cobra.Command {
	flags := &postFlags{}

	cmd := &cobra.Command{
		Use:   "edit <post-id>",
		Short: "Edit a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, "post.edit", func(ctx context.Context) (any, error) {
				post, err := c.client.GetPostByID(ctx, args[0])
				if err != nil {
					return nil, err
				}

				input := editInput(post)
				if cmd.Flags().Changed("caption") {
					input.Caption = flags.caption
				}
				if cmd.Flags().Changed("location") {
					input.Location = flags.location
				}
				if cmd.Flags().Changed("tags") {
					input.Tags = flags.tags
				}
				if flags.image != "" {
					file, closeFile, err := openImage(flags.image)
					if err != nil {
						return nil, err
					}
					defer closeFile()
					input.Files = []usecase.File{file}
				}

				updated, err := c.client.UpdatePost(ctx, input)
				if err != nil {
					return nil, err
				}

				return newPostView(updated), nil
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func editInput(post *entity.Post) *usecase.UpdatePostInput {
	return &usecase.UpdatePostInput{
		PostID:    post.ID,
		CreatorID: post.CreatorID,
		Caption:   post.Caption,
		Location:  post.Location,
		Tags:      strings.Join(post.Tags, ","),
		ImageID:   post.ImageID,
		ImageURL:  post.ImageURL,
	}
}

func (c *cli) newPostDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete a post and its image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, "post.delete", func(ctx context.Context) (any, error) {
				post, err := c.client.GetPostByID(ctx, args[0])
				if err != nil {
					return nil, err
				}

				if err := c.client.DeletePost(ctx, post.ID, post.ImageID); err != nil {
					return nil, err
				}

				return map[string]string{"deleted": post.ID}, nil
			})
		},
	}
}

func (c *cli) newPostListCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, "post.list", func(ctx context.Context) (any, error) {
				creatorID := userID
				if creatorID == "" {
					me, err := c.client.GetCurrentUser(ctx)
					if err != nil {
						return nil, err
					}
					creatorID = me.ID
				}

				posts, err := c.client.GetUserPosts(ctx, creatorID)
				if err != nil {
					return nil, err
				}

				return newPostViews(posts), nil
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Profile id of the creator (default: signed-in user)")

	return cmd
}

func (c *cli) newLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like or unlike a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, "like", func(ctx context.Context) (any, error) {
				me, err := c.client.GetCurrentUser(ctx)
				if err != nil {
					return nil, err
				}
				post, err := c.client.GetPostByID(ctx, args[0])
				if err != nil {
					return nil, err
				}

				liked, err := c.client.LikePost(ctx, post.ID, me.ID, post.Likes)
				if err != nil {
					return nil, err
				}

				return newPostView(liked), nil
			})
		},
	}
}
