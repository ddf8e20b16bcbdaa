package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/playtime/internal/services/catalog"
)

func (c *CLI) importCommand() CommandHandler {
	return newCommand(&cobra.Command{
		Use:   "import <catalog.toml>",
		Short: "Load games, stations, clients, referrers and promotions from a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.LoadCatalog(args[0], c.location)
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			output, err := c.catalog.ImportCatalog(cmd.Context(), &catalog.ImportCatalogInput{
				Catalog:    cat,
				OperatorID: c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			RespondWithMessage(cmd, "Imported %d games, %d stations, %d clients, %d referrers, %d promotions",
				output.Games, output.Stations, output.Clients, output.Referrers, output.Promotions)
			return nil
		},
	})
}

func (c *CLI) outOfServiceCommand() CommandHandler {
	var restore bool
	cmd := &cobra.Command{
		Use:   "out-of-service <station-id>",
		Short: "Mark a station out of service, or back in service with --clear",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.catalog.SetStationOutOfService(cmd.Context(), &catalog.SetStationOutOfServiceInput{
				StationID:    args[0],
				OutOfService: !restore,
				OperatorID:   c.operator,
			})
			if err != nil {
				return c.RespondWithError(cmd, err)
			}
			if restore {
				RespondWithMessage(cmd, "Station %s is back in service", args[0])
			} else {
				RespondWithMessage(cmd, "Station %s is out of service", args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&restore, "clear", false, "put the station back in service")
	return newCommand(cmd)
}
