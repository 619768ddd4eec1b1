package cmd

import (
	"github.com/bgraf/trackstat/cmd/serve"
	"github.com/bgraf/trackstat/config"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [PATH...]",
	Short: "Serve track summaries over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := trackPaths(args)
		if err != nil {
			return err
		}

		return serve.Run(config.ServeAddress(), paths)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", ":8000", "Listen address")
	bindFlag(config.KeyServeAddress, serveCmd.Flags().Lookup("address"))
}
