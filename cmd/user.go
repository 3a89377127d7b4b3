package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/als-computing/splash-userservice/api/services"
	"github.com/als-computing/splash-userservice/internal/appconfig"
)

var (
	userIDType   string
	userNoGroups bool
	userV2       bool
)

// userCmd calls the facility adapter directly, bypassing the HTTP layer. Handy
// for verifying connectivity to ALSHub and the ESAF service.
var userCmd = &cobra.Command{
	Use:   "user <orcid-or-email>",
	Short: "Fetch a user directly from ALSHub and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setUp()

		idType, err := services.ParseIDType(userIDType)
		if err != nil {
			return err
		}

		cfg, err := appconfig.LoadConfig(configPath)
		if err != nil {
			return err
		}

		alshub := services.NewALSHubService(cfg)
		ctx := log.Logger.WithContext(context.Background())

		log.Info().Str("id", args[0]).Str("type", string(idType)).Msg("fetching user")

		var result interface{}
		if userV2 {
			result, err = alshub.GetUserGroupDetails(ctx, args[0])
		} else {
			result, err = alshub.GetUser(ctx, args[0], idType, !userNoGroups)
		}
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}

		// The user JSON is the command's output, everything else logs to stderr
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.Flags().StringVar(&userIDType, "type", "orcid", "type of identifier: orcid or email")
	userCmd.Flags().BoolVar(&userNoGroups, "no-groups", false, "don't fetch groups (proposals, ESAFs, beamlines)")
	userCmd.Flags().BoolVar(&userV2, "v2", false, "fetch the v2 group details instead of the v1 user")
}
