package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/morfo-lang/morfo/adapters/webapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the render API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		api, errCh := webapi.Setup(serveAddr)
		webapi.Render(api.Group("/api"), svc, logger)

		logger.Info("listening", zap.String("addr", serveAddr))

		return <-errCh
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "Address to listen on")
}
