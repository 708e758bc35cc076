package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"birthday-twins/birthdays"
	"birthday-twins/internal/app"
	"birthday-twins/models"
)

type loadPipeline func(cmd *cobra.Command) (*app.Pipeline, error)

func newLookupCmd(root *rootOptions, load loadPipeline) *cobra.Command {
	var (
		date     string
		noImages bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "List five famous people born on a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := models.ParseDateKey(date)
			if err != nil {
				return err
			}
			p, err := load(cmd)
			if err != nil {
				return err
			}

			res, err := p.Birthdays.Fetch(cmd.Context(), key, birthdays.FetchOptions{BypassCache: refresh, SkipImages: noImages})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if root.jsonOut {
				return writeJSON(out, res)
			}

			fmt.Fprintf(out, "Famous birthdays on %s\n\n", res.Date.Display())
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDESCRIPTION\tIMAGE")
			for _, c := range res.Celebrities {
				image := c.ImageURL
				if image == "" {
					image = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Description, image)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date as MM-DD or YYYY-MM-DD")
	cmd.Flags().BoolVar(&noImages, "no-images", false, "skip the image resolution chain")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the lookup cache")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newResolveImageCmd(root *rootOptions, load loadPipeline) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "resolve-image",
		Short: "Run the image fallback chain for one person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := load(cmd)
			if err != nil {
				return err
			}

			report := p.Resolver.Resolve(cmd.Context(), name)
			out := cmd.OutOrStdout()
			if root.jsonOut {
				return writeJSON(out, report)
			}

			for _, st := range report.Stages {
				line := fmt.Sprintf("%-12s %s", st.Provider, st.Status)
				if st.Error != "" {
					line += " (" + st.Error + ")"
				}
				fmt.Fprintln(out, line)
			}
			if !report.Found() {
				fmt.Fprintln(out, "no image found; a placeholder avatar will be used")
				return nil
			}
			fmt.Fprintln(out, report.URL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "person name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
