package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openshelf/openshelf/internal/domain/catalog"
)

func browseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Load the catalog overview (books, authors, categories, publishers)",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := c.app.API.FetchOverview(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(overview)
		},
	}
}

func booksCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse and search the catalog",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all books",
			RunE: func(cmd *cobra.Command, args []string) error {
				books, err := c.app.API.Books.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(books)
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one book",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return err
				}
				book, err := c.app.API.Books.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return c.print(book)
			},
		},
		searchCmd(c),
	)

	return cmd
}

func searchCmd(c *cli) *cobra.Command {
	var search catalog.BookSearch

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search books by title, isbn, author, category, publisher or date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := c.app.API.Books.Search(cmd.Context(), search)
			if err != nil {
				return err
			}
			return c.print(books)
		},
	}

	cmd.Flags().StringVar(&search.Title, "title", "", "title contains")
	cmd.Flags().StringVar(&search.ISBN, "isbn", "", "exact ISBN")
	cmd.Flags().StringVar(&search.AuthorName, "author", "", "author name contains")
	cmd.Flags().StringVar(&search.CategoryName, "category", "", "category name")
	cmd.Flags().StringVar(&search.PublisherName, "publisher", "", "publisher name contains")
	cmd.Flags().StringVar(&search.PublishedDateBegin, "published-after", "", "published on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&search.PublishedDateEnd, "published-before", "", "published on or before (YYYY-MM-DD)")

	return cmd
}
