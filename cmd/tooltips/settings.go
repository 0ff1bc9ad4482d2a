package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	entities "github.com/KirkDiggler/rpg-tooltips/internal/entities/settings"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the add-on settings",
	Long:  `Settings are stored in Redis and pushed to running hosts.`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings as JSON",
	Args:  cobra.NoArgs,
	RunE:  runSettingsGet,
}

var settingsSetTypeCmd = &cobra.Command{
	Use:   "set-type <type> <true|false>",
	Short: "Show or hide tooltips for one item type",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSetType,
}

var settingsEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable tooltips",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSettings(cmd, func(s *entities.Settings) error {
			s.Enabled = true
			return nil
		})
	},
}

var settingsDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable tooltips",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSettings(cmd, func(s *entities.Settings) error {
			s.Enabled = false
			return nil
		})
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetTypeCmd)
	settingsCmd.AddCommand(settingsEnableCmd)
	settingsCmd.AddCommand(settingsDisableCmd)
}

// settingsResult carries settings and whether they came from Redis
type settingsResult struct {
	Settings *entities.Settings `json:"settings"`
	Stored   bool               `json:"stored"`
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	a, err := newApp("")
	if err != nil {
		return err
	}
	defer a.Close()

	current, err := a.currentSettings(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	out, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runSettingsSetType(cmd *cobra.Command, args []string) error {
	visible, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("visibility must be true or false, got %q", args[1])
	}

	return updateSettings(cmd, func(s *entities.Settings) error {
		if !s.Types.Set(args[0], visible) {
			return fmt.Errorf("unknown type %q (known: %v)", args[0], entities.TypeNames())
		}
		return nil
	})
}

func updateSettings(cmd *cobra.Command, change func(*entities.Settings) error) error {
	ctx := cmd.Context()

	a, err := newApp("")
	if err != nil {
		return err
	}
	defer a.Close()

	current, err := a.currentSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := change(current.Settings); err != nil {
		return err
	}

	if _, err := a.settings.Update(ctx, settings.UpdateInput{Settings: current.Settings}); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	fmt.Printf("enabled=%t system=%s types=%s\n",
		current.Settings.Enabled, current.Settings.SystemID, current.Settings.Types.String())
	return nil
}
