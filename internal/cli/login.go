package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codetray/codetray/internal/config"
	"github.com/codetray/codetray/internal/daemon/dispatch"
	"github.com/codetray/codetray/internal/desktop"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Control whether the tray starts at login",
}

var loginOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Start the tray at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setLogin(cmd, true)
	},
}

var loginOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Do not start the tray at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setLogin(cmd, false)
	},
}

var loginStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the launch-at-login setting",
	Args:  cobra.NoArgs,
	RunE:  runLoginStatus,
}

func init() {
	loginCmd.AddCommand(loginOffCmd)
	loginCmd.AddCommand(loginOnCmd)
	loginCmd.AddCommand(loginStatusCmd)
}

// newLoginItem returns the login item for the daemon binary.
var newLoginItem = func() (dispatch.AutoLauncher, error) {
	exe, err := findDaemonBinary()
	if err != nil {
		return nil, err
	}
	return desktop.NewAutoLaunch(desktop.LoginItemName, exe)
}

func openState() (*dispatch.State, error) {
	store, err := config.OpenGlobalStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	state := dispatch.NewState(store)
	state.LoadSettings = config.LoadSettings
	return state, nil
}

func setLogin(cmd *cobra.Command, enabled bool) error {
	state, err := openState()
	if err != nil {
		return err
	}
	if err := state.SetAutoLogin(enabled); err != nil {
		return fmt.Errorf("failed to save login setting: %w", err)
	}

	out := cmd.OutOrStdout()
	item, err := newLoginItem()
	if err != nil {
		// The daemon applies the flag itself on its next start.
		fmt.Fprintln(out, paint(styleWarning, fmt.Sprintf("Saved, but the login item was not updated: %v", err)))
		return nil
	}
	if err := dispatch.Reconcile(item, enabled); err != nil {
		return err
	}

	if enabled {
		fmt.Fprintln(out, paint(styleSuccess, "Code Tray will start at login."))
	} else {
		fmt.Fprintln(out, paint(styleSuccess, "Code Tray will not start at login."))
	}
	return nil
}

func runLoginStatus(cmd *cobra.Command, args []string) error {
	state, err := openState()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", paint(styleLabel, "Setting:   "), onOff(state.AutoLogin()))

	item, err := newLoginItem()
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", paint(styleLabel, "Login item:"), paint(styleHint, "unknown"))
		return nil
	}
	installed, err := item.IsEnabled()
	if err != nil {
		return fmt.Errorf("failed to check login item: %w", err)
	}
	fmt.Fprintf(out, "%s %s\n", paint(styleLabel, "Login item:"), onOff(installed))
	return nil
}

func onOff(v bool) string {
	if v {
		return paint(styleSuccess, "on")
	}
	return paint(styleValue, "off")
}
