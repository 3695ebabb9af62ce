package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"estateadmin/console/internal/guard"
)

var routesAuthorized bool

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print what the route guard does for each screen",
	Long: `Print every console route with the guard's decision for a signed-in or
anonymous administrator.

Examples:
  estate-admin routes
  estate-admin routes --authorized`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tKIND\tRESULT")
		for _, route := range guard.Routes {
			decision := guard.Resolve(samplePath(route.Pattern), routesAuthorized)
			result := "render"
			if !decision.Render {
				result = "redirect " + decision.Redirect
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", route.Pattern, route.Kind, result)
		}
		decision := guard.Resolve("/unknown", routesAuthorized)
		fmt.Fprintf(w, "%s\t%s\tredirect %s\n", "*", guard.KindUnknown, decision.Redirect)
		return w.Flush()
	},
}

func init() {
	routesCmd.Flags().BoolVar(&routesAuthorized, "authorized", false, "resolve as a signed-in administrator")
}

// samplePath fills route parameters so the pattern can be classified.
func samplePath(pattern string) string {
	if pattern == guard.PathEditProperty+":id" {
		return guard.PathEditProperty + "example"
	}
	return pattern
}
