package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"eduterm/internal/bootstrap"
	accountdto "eduterm/internal/modules/account/dto"
	bookmarksdto "eduterm/internal/modules/bookmarks/dto"
	forumdto "eduterm/internal/modules/forum/dto"
	shortcutsdomain "eduterm/internal/modules/shortcuts/domain"
	stateoutadapter "eduterm/internal/modules/userstate/adapter/out"
	"eduterm/internal/platform/config"
	uiapp "eduterm/internal/ui/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var stateDir string

	root := &cobra.Command{
		Use:           "eduterm",
		Short:         "Academic resource portal for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "state directory (default ~/.eduterm)")

	root.AddCommand(newTUICmd(&stateDir))
	root.AddCommand(newLoginCmd(&stateDir))
	root.AddCommand(newRegisterCmd(&stateDir))
	root.AddCommand(newLogoutCmd(&stateDir))
	root.AddCommand(newWhoamiCmd(&stateDir))
	root.AddCommand(newPasswdCmd(&stateDir))
	root.AddCommand(newProfileCmd(&stateDir))
	root.AddCommand(newResourceCmd(&stateDir, "papers", "paper", "Browse previous year papers"))
	root.AddCommand(newResourceCmd(&stateDir, "notes", "note", "Browse study notes"))
	root.AddCommand(newResourceCmd(&stateDir, "syllabus", "syllabus", "Browse syllabus documents"))
	root.AddCommand(newSearchCmd(&stateDir))
	root.AddCommand(newBookmarksCmd(&stateDir))
	root.AddCommand(newForumCmd(&stateDir))
	root.AddCommand(newChatCmd(&stateDir))
	root.AddCommand(newPrefsCmd(&stateDir))
	root.AddCommand(newProgressCmd(&stateDir))
	root.AddCommand(newDataCmd(&stateDir))
	root.AddCommand(newShortcutsCmd())
	return root
}

func loadApp(ctx context.Context, stateDir string) (*bootstrap.App, error) {
	cfg, err := config.Load(stateDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, stateoutadapter.NewWriterNotifier(os.Stderr))
}

func newTUICmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the eduterm terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(*stateDir)
			if err != nil {
				return err
			}
			notifier := uiapp.NewNotifier()
			app, err := bootstrap.New(context.Background(), cfg, notifier)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app, notifier)
		},
	}
}

// ─── auth ────────────────────────────────────────────────────────────────────

func newLoginCmd(stateDir *string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the portal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			user, err := app.Account.Login(ctx, accountdto.LoginInput{Email: email, Password: password})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(stateDir *string) *cobra.Command {
	var name, email, password, confirm string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a portal account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if confirm == "" {
				confirm = password
			}
			user, err := app.Account.Register(ctx, accountdto.RegisterInput{
				Name:            name,
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation (defaults to --password)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.Account.Logout(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			user, ok := app.Account.CurrentUser(ctx)
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			role := "student"
			if user.IsAdmin {
				role = "admin"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", user.Name, user.Email, role)
			return nil
		},
	}
}

func newProfileCmd(stateDir *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Manage the user profile"}

	var name string
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			user, err := app.Account.UpdateProfile(ctx, name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&name, "name", "", "display name")
	_ = updateCmd.MarkFlagRequired("name")

	profile.AddCommand(updateCmd)
	return profile
}

func newPasswdCmd(stateDir *string) *cobra.Command {
	var current, next, confirm string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if confirm == "" {
				confirm = next
			}
			err = app.Account.ChangePassword(ctx, accountdto.PasswordChangeInput{
				Current: current,
				New:     next,
				Confirm: confirm,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "confirmation (defaults to --new)")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

// ─── resources ───────────────────────────────────────────────────────────────

func newResourceCmd(stateDir *string, use, resourceType, short string) *cobra.Command {
	parent := &cobra.Command{Use: use, Short: short}

	var query, branch string
	var limit int

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List " + use,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			resources, err := app.CatalogCLI.List(ctx, resourceType, query, branch, limit)
			if err != nil {
				return err
			}
			for _, r := range resources {
				line := fmt.Sprintf("%s  %s", r.ID, r.Title)
				if r.Branch != "" {
					line += "  [" + r.Branch + "]"
				}
				if r.Year != "" {
					line += "  " + r.Year
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&query, "query", "", "filter by title, description or tags")
	listCmd.Flags().StringVar(&branch, "branch", "", "filter by branch")
	listCmd.Flags().IntVar(&limit, "limit", 0, "max results (0 = all)")

	downloadCmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a " + resourceType + " to the local cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.CatalogCLI.Download(ctx, resourceType, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "downloaded %s to %s\n", out.Title, out.Path)
			return nil
		},
	}

	var page int
	previewCmd := &cobra.Command{
		Use:   "preview <id>",
		Short: "Preview a " + resourceType + " page as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.CatalogCLI.Preview(ctx, resourceType, args[0], page)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (page %d/%d)\n\n%s\n", out.Title, out.Page, out.Total, out.Text)
			return nil
		},
	}
	previewCmd.Flags().IntVar(&page, "page", 1, "page number")

	var title, upBranch, description, year, filePath string
	var tags []string
	uploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a " + resourceType + " (admin only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.CatalogCLI.Upload(ctx, resourceType, title, upBranch, description, year, filePath, tags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%s)\n", out.Title, out.ID)
			return nil
		},
	}
	uploadCmd.Flags().StringVar(&title, "title", "", "resource title")
	uploadCmd.Flags().StringVar(&upBranch, "branch", "", "branch")
	uploadCmd.Flags().StringVar(&description, "description", "", "description")
	uploadCmd.Flags().StringVar(&year, "year", "", "year")
	uploadCmd.Flags().StringVar(&filePath, "file", "", "file to upload")
	uploadCmd.Flags().StringSliceVar(&tags, "tags", nil, "tags")
	_ = uploadCmd.MarkFlagRequired("title")
	_ = uploadCmd.MarkFlagRequired("file")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + resourceType + " (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.CatalogCLI.Delete(ctx, resourceType, args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
			return nil
		},
	}

	parent.AddCommand(listCmd, downloadCmd, previewCmd, uploadCmd, deleteCmd)
	return parent
}

// ─── search ──────────────────────────────────────────────────────────────────

func newSearchCmd(stateDir *string) *cobra.Command {
	var kind, branch string
	var limit int

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search papers, notes, syllabus and forum posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			results, err := app.SearchCLI.Search(ctx, args[0], kind, branch, limit)
			if err != nil {
				return err
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-8s  %s  %s\n", r.Kind, r.ID, r.Title)
			}
			return nil
		},
	}
	search.Flags().StringVar(&kind, "kind", "", "restrict to paper|note|syllabus|forum")
	search.Flags().StringVar(&branch, "branch", "", "filter by branch")
	search.Flags().IntVar(&limit, "limit", 20, "max results")

	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recent search terms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			terms, err := app.SearchCLI.Recent(ctx)
			if err != nil {
				return err
			}
			for _, t := range terms {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear-recent",
		Short: "Clear recent search terms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.SearchCLI.ClearRecent(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cleared")
			return nil
		},
	}

	search.AddCommand(recentCmd, clearCmd)
	return search
}

// ─── bookmarks ───────────────────────────────────────────────────────────────

func newBookmarksCmd(stateDir *string) *cobra.Command {
	bookmarks := &cobra.Command{Use: "bookmarks", Short: "Manage bookmarks"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			marks, err := app.Bookmarks.List(ctx)
			if err != nil {
				return err
			}
			for _, b := range marks {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-8s  %s  %s\n", b.Type, b.ID, b.Title)
			}
			return nil
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <type> <id>",
		Short: "Toggle a bookmark on a resource or post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			key := bookmarksdto.KeyInput{Type: args[0], ID: args[1]}
			current, err := app.Bookmarks.CheckAll(ctx, []bookmarksdto.KeyInput{key})
			if err != nil {
				return err
			}
			marked := false
			for _, v := range current {
				marked = v
			}
			out, err := app.Bookmarks.Toggle(ctx, key, marked)
			if err != nil {
				return err
			}
			if out.Bookmarked {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "bookmarked")
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "bookmark removed")
			}
			return nil
		},
	}

	bookmarks.AddCommand(listCmd, toggleCmd)
	return bookmarks
}

// ─── forum ───────────────────────────────────────────────────────────────────

func newForumCmd(stateDir *string) *cobra.Command {
	forum := &cobra.Command{Use: "forum", Short: "Discussion forum"}

	var query, branch string
	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List forum posts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			posts, err := app.Forum.List(ctx, query, branch, limit)
			if err != nil {
				return err
			}
			for _, p := range posts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  by %s (%d replies)\n", p.ID, p.Title, p.Author, p.ReplyCount)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&query, "query", "", "filter posts")
	listCmd.Flags().StringVar(&branch, "branch", "", "filter by branch")
	listCmd.Flags().IntVar(&limit, "limit", 0, "max results (0 = all)")

	showCmd := &cobra.Command{
		Use:   "show <post-id>",
		Short: "Show a post and its replies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			thread, err := app.Forum.Thread(ctx, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\nby %s at %s\n\n%s\n",
				thread.Post.Title, thread.Post.Author,
				thread.Post.CreatedAt.Format("2006-01-02 15:04"), thread.Post.Content)
			for _, r := range thread.Replies {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n-- %s at %s\n%s\n",
					r.Author, r.CreatedAt.Format("2006-01-02 15:04"), r.Content)
			}
			return nil
		},
	}

	var title, postBranch string
	var tags []string
	postCmd := &cobra.Command{
		Use:   "post <content>",
		Short: "Create a forum post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			post, err := app.Forum.CreatePost(ctx, forumdto.NewPostInput{
				Title:   title,
				Content: args[0],
				Branch:  postBranch,
				Tags:    tags,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "posted %s (%s)\n", post.Title, post.ID)
			return nil
		},
	}
	postCmd.Flags().StringVar(&title, "title", "", "post title")
	postCmd.Flags().StringVar(&postBranch, "branch", "", "branch")
	postCmd.Flags().StringSliceVar(&tags, "tags", nil, "tags")
	_ = postCmd.MarkFlagRequired("title")

	replyCmd := &cobra.Command{
		Use:   "reply <post-id> <content>",
		Short: "Reply to a forum post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			reply, err := app.Forum.CreateReply(ctx, forumdto.NewReplyInput{PostID: args[0], Content: args[1]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "replied (%s)\n", reply.ID)
			return nil
		},
	}

	forum.AddCommand(listCmd, showCmd, postCmd, replyCmd)
	return forum
}

// ─── assistant ───────────────────────────────────────────────────────────────

func newChatCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the study assistant a one-off question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			reply, err := app.Assistant.Send(ctx, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Content)
			return nil
		},
	}
}

// ─── preferences ─────────────────────────────────────────────────────────────

func newPrefsCmd(stateDir *string) *cobra.Command {
	prefs := &cobra.Command{Use: "prefs", Short: "User preferences"}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			p, err := app.StateCLI.ShowPreferences(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "theme      %s\n", p.Theme)
			_, _ = fmt.Fprintf(out, "language   %s\n", p.Language)
			_, _ = fmt.Fprintf(out, "density    %s\n", p.Density)
			_, _ = fmt.Fprintf(out, "font-size  %s\n", p.FontSize)
			return nil
		},
	}

	var theme, language, density, fontSize string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.StateCLI.SetPreferences(ctx, theme, language, density, fontSize); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "saved")
			return nil
		},
	}
	setCmd.Flags().StringVar(&theme, "theme", "", "light|dark")
	setCmd.Flags().StringVar(&language, "language", "", "interface language")
	setCmd.Flags().StringVar(&density, "density", "", "comfortable|compact")
	setCmd.Flags().StringVar(&fontSize, "font-size", "", "small|medium|large")

	prefs.AddCommand(showCmd, setCmd)
	return prefs
}

// ─── progress ────────────────────────────────────────────────────────────────

func newProgressCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show study progress and achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			p, err := app.StateCLI.ShowProgress(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "downloads   %d\n", p.ResourcesDownloaded)
			_, _ = fmt.Fprintf(out, "tests       %d\n", p.TestsCompleted)
			_, _ = fmt.Fprintf(out, "streak      %d days\n", p.StudyStreak)
			_, _ = fmt.Fprintf(out, "level       %d\n", p.StudyLevel)
			if len(p.Achievements) > 0 {
				_, _ = fmt.Fprintln(out, "\nachievements")
				for _, a := range p.Achievements {
					_, _ = fmt.Fprintf(out, "  %s %s  %s\n", a.Icon, a.Name, a.Description)
				}
			}
			if len(p.RecentlyViewed) > 0 {
				_, _ = fmt.Fprintf(out, "\nrecently viewed\n  %s\n", strings.Join(p.RecentlyViewed, "\n  "))
			}
			return nil
		},
	}
}

// ─── data ────────────────────────────────────────────────────────────────────

func newDataCmd(stateDir *string) *cobra.Command {
	data := &cobra.Command{Use: "data", Short: "Export or import portal data"}

	var dir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export preferences and progress to a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.StateCLI.Export(ctx, dir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "exported to", out.Path)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&dir, "dir", ".", "destination directory")

	importCmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a previously exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := loadApp(ctx, *stateDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.StateCLI.Import(ctx, args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "imported", args[0])
			return nil
		},
	}

	data.AddCommand(exportCmd, importCmd)
	return data
}

// ─── shortcuts ───────────────────────────────────────────────────────────────

func newShortcutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcuts",
		Short: "List TUI keyboard shortcuts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, b := range shortcutsdomain.Bindings() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", b.Keys, b.Description)
			}
			return nil
		},
	}
}
