package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/openshelf/openshelf/internal/domain/auth"
	"github.com/openshelf/openshelf/internal/domain/catalog"
)

// adminCmd groups the management console. Every subcommand passes through
// the navigation guard against its /admin/* route before touching the API,
// mirroring how the web client gated its admin pages.
func adminCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Management console (Admin role required)",
	}

	cmd.AddCommand(
		adminBooksCmd(c),
		adminAuthorsCmd(c),
		adminPublishersCmd(c),
		adminCategoriesCmd(c),
		adminUsersCmd(c),
		adminLoansCmd(c),
		adminFinesCmd(c),
	)

	return cmd
}

// guarded wraps a command body with the admin route guard.
func guarded(c *cli, route string, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := c.requireRoute(route, auth.RoleAdmin); err != nil {
			return err
		}
		return run(cmd, args)
	}
}

func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func adminBooksCmd(c *cli) *cobra.Command {
	const route = "/admin/books"

	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage books",
	}

	var edit catalog.EditBook
	var publishedOn string
	addFlags := func(sub *cobra.Command) {
		sub.Flags().StringVar(&edit.Title, "title", "", "book title")
		sub.Flags().StringVar(&edit.ISBN, "isbn", "", "ISBN")
		sub.Flags().StringVar(&publishedOn, "published", "", "publication date (YYYY-MM-DD)")
		sub.Flags().Int64Var(&edit.AuthorID, "author-id", 0, "author id")
		sub.Flags().Int64Var(&edit.PublisherID, "publisher-id", 0, "publisher id")
		sub.Flags().Int64SliceVar(&edit.CategoryIDs, "category-ids", nil, "category ids")
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			published, err := parseDate(publishedOn)
			if err != nil {
				return err
			}
			edit.PublishedDate = published
			return c.app.API.Books.Add(cmd.Context(), edit)
		}),
	}
	addFlags(addCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a book",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			published, err := parseDate(publishedOn)
			if err != nil {
				return err
			}
			edit.PublishedDate = published
			return c.app.API.Books.Update(cmd.Context(), id, edit)
		}),
	}
	addFlags(updateCmd)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all books",
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				books, err := c.app.API.Books.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(books)
			}),
		},
		&cobra.Command{
			Use:   "raw",
			Short: "List id/title only, for picking references",
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				books, err := c.app.API.Books.GetRaw(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(books)
			}),
		},
		addCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete <id>...",
			Short: "Delete one or more books",
			Args:  cobra.MinimumNArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				if len(ids) == 1 {
					return c.app.API.Books.Delete(cmd.Context(), ids[0])
				}
				return c.app.API.Books.BatchDelete(cmd.Context(), ids)
			}),
		},
	)

	return cmd
}

func adminAuthorsCmd(c *cli) *cobra.Command {
	const route = "/admin/authors"

	cmd := &cobra.Command{
		Use:   "authors",
		Short: "Manage authors",
	}

	var edit catalog.EditAuthor
	addFlags := func(sub *cobra.Command) {
		sub.Flags().StringVar(&edit.Name, "name", "", "author name")
		sub.Flags().StringVar(&edit.Biography, "biography", "", "author biography")
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an author",
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			author, err := c.app.API.Authors.Create(cmd.Context(), edit)
			if err != nil {
				return err
			}
			return c.print(author)
		}),
	}
	addFlags(createCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an author",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.app.API.Authors.Update(cmd.Context(), id, edit)
		}),
	}
	addFlags(updateCmd)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all authors",
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				authors, err := c.app.API.Authors.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(authors)
			}),
		},
		createCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete <id>...",
			Short: "Delete one or more authors",
			Args:  cobra.MinimumNArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				if len(ids) == 1 {
					return c.app.API.Authors.Delete(cmd.Context(), ids[0])
				}
				return c.app.API.Authors.BatchDelete(cmd.Context(), ids)
			}),
		},
	)

	return cmd
}

func adminPublishersCmd(c *cli) *cobra.Command {
	const route = "/admin/publishers"

	cmd := &cobra.Command{
		Use:   "publishers",
		Short: "Manage publishers",
	}

	var name string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a publisher",
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			return c.app.API.Publishers.Create(cmd.Context(), catalog.EditPublisher{Name: name})
		}),
	}
	createCmd.Flags().StringVar(&name, "name", "", "publisher name")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a publisher",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.app.API.Publishers.Update(cmd.Context(), id, catalog.EditPublisher{Name: name})
		}),
	}
	updateCmd.Flags().StringVar(&name, "name", "", "publisher name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all publishers",
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				publishers, err := c.app.API.Publishers.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(publishers)
			}),
		},
		createCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete <id>...",
			Short: "Delete one or more publishers",
			Args:  cobra.MinimumNArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				if len(ids) == 1 {
					return c.app.API.Publishers.Delete(cmd.Context(), ids[0])
				}
				return c.app.API.Publishers.BatchDelete(cmd.Context(), ids)
			}),
		},
	)

	return cmd
}

func adminCategoriesCmd(c *cli) *cobra.Command {
	const route = "/admin/categories"

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}

	var name string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			return c.app.API.Categories.Create(cmd.Context(), catalog.EditCategory{Name: name})
		}),
	}
	createCmd.Flags().StringVar(&name, "name", "", "category name")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.app.API.Categories.Update(cmd.Context(), id, catalog.EditCategory{Name: name})
		}),
	}
	updateCmd.Flags().StringVar(&name, "name", "", "category name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all categories",
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				categories, err := c.app.API.Categories.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(categories)
			}),
		},
		createCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete <id>...",
			Short: "Delete one or more categories",
			Args:  cobra.MinimumNArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				if len(ids) == 1 {
					return c.app.API.Categories.Delete(cmd.Context(), ids[0])
				}
				return c.app.API.Categories.BatchDelete(cmd.Context(), ids)
			}),
		},
	)

	return cmd
}

func adminUsersCmd(c *cli) *cobra.Command {
	const route = "/admin/users"

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all users",
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				users, err := c.app.API.Users.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(users)
			}),
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one user",
			Args:  cobra.ExactArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				user, err := c.app.API.Users.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return c.print(user)
			}),
		},
		&cobra.Command{
			Use:   "delete <id>...",
			Short: "Delete one or more users",
			Args:  cobra.MinimumNArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				if len(ids) == 1 {
					return c.app.API.Users.Delete(cmd.Context(), ids[0])
				}
				return c.app.API.Users.BatchDelete(cmd.Context(), ids)
			}),
		},
	)

	return cmd
}

func adminLoansCmd(c *cli) *cobra.Command {
	const route = "/admin/loans"

	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Manage loans",
	}

	var bookID, userID int64
	var dueOn string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a loan",
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			due, err := parseDate(dueOn)
			if err != nil {
				return err
			}
			return c.app.API.Loans.Create(cmd.Context(), catalog.EditLoan{
				BookID:  bookID,
				UserID:  userID,
				DueDate: due,
			})
		}),
	}
	createCmd.Flags().Int64Var(&bookID, "book-id", 0, "book id")
	createCmd.Flags().Int64Var(&userID, "user-id", 0, "user id")
	createCmd.Flags().StringVar(&dueOn, "due", "", "due date (YYYY-MM-DD)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all loans",
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				loans, err := c.app.API.Loans.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(loans)
			}),
		},
		createCmd,
		&cobra.Command{
			Use:   "return <id>",
			Short: "Mark a loaned book as returned",
			Args:  cobra.ExactArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return c.app.API.Loans.Return(cmd.Context(), id)
			}),
		},
		&cobra.Command{
			Use:   "delete <id>...",
			Short: "Delete one or more loans",
			Args:  cobra.MinimumNArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				if len(ids) == 1 {
					return c.app.API.Loans.Delete(cmd.Context(), ids[0])
				}
				return c.app.API.Loans.BatchDelete(cmd.Context(), ids)
			}),
		},
	)

	return cmd
}

func adminFinesCmd(c *cli) *cobra.Command {
	const route = "/admin/fines"

	cmd := &cobra.Command{
		Use:   "fines",
		Short: "Manage fines",
	}

	var loanID, userID int64

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Raise a fine against a loan and/or user",
		RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
			return c.app.API.Fines.Create(cmd.Context(), loanID, userID)
		}),
	}
	createCmd.Flags().Int64Var(&loanID, "loan-id", 0, "loan id")
	createCmd.Flags().Int64Var(&userID, "user-id", 0, "user id")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all fines",
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				fines, err := c.app.API.Fines.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(fines)
			}),
		},
		createCmd,
		&cobra.Command{
			Use:   "pay <id>",
			Short: "Settle a fine",
			Args:  cobra.ExactArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return c.app.API.Fines.Pay(cmd.Context(), id)
			}),
		},
		&cobra.Command{
			Use:   "delete <id>...",
			Short: "Delete one or more fines",
			Args:  cobra.MinimumNArgs(1),
			RunE: guarded(c, route, func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				if len(ids) == 1 {
					return c.app.API.Fines.Delete(cmd.Context(), ids[0])
				}
				return c.app.API.Fines.BatchDelete(cmd.Context(), ids)
			}),
		},
	)

	return cmd
}
