package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"movies/internal/domain/movie"
	"movies/internal/usecase"
)

func moviesCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List or search the built-in catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewMovieUsecase(nil, movie.DefaultCatalog(), nil)

			var items []usecase.MovieSummary
			var err error
			if query != "" {
				items, err = uc.Search(cmd.Context(), query)
			} else {
				items, err = uc.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tRATING")
			for _, m := range items {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\n", m.ID, m.Title, m.Year, m.AverageRating)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search title, genre, people and story")
	return cmd
}

func movieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "movie <id>",
		Short: "Show a movie from the built-in catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := movie.DefaultCatalog().Get(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d)  %s  %s\n", m.Title, m.Year, m.Runtime, m.AgeRating)
			fmt.Fprintf(out, "%s\n\n%s\n\n", strings.Join(m.Genres, ", "), m.Story)
			fmt.Fprintf(out, "Director: %s\nStars: %s\n", m.Director, strings.Join(m.Stars, ", "))
			fmt.Fprintf(out, "\nReviews (%.1f)\n", movie.AverageRating(m.Reviews))
			for _, r := range m.Reviews {
				fmt.Fprintf(out, "  %d/5  %s: %s\n", r.Rating, r.Author, r.Text)
			}
			return nil
		},
	}
}

func bookmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmark <movie-id>",
		Short: "Toggle a bookmark in the session",
		Args:  cobra.ExactArgs(1),
		RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
			return api.ToggleBookmark(ctx, id, args[0])
		}),
	}
}

func savedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List the session's saved movies",
		Args:  cobra.NoArgs,
		RunE: sessionRunE(func(ctx context.Context, id uuid.UUID, args []string) (any, error) {
			return api.Saved(ctx, id)
		}),
	}
}
