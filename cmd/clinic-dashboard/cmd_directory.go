package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/clinic-dashboard/internal/model"
	"github.com/ytget/clinic-dashboard/internal/session"
)

// accountsCmd lists the staff directory without passwords
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the staff accounts that can sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		directory, err := session.LoadDirectory(env.DirectoryFile)
		if err != nil {
			return fmt.Errorf("load directory: %w", err)
		}
		printAccounts(cmd.OutOrStdout(), directory.Accounts())
		return nil
	},
}

// capabilitiesCmd prints the role to capability table
var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities [role]",
	Short: "Show the capabilities granted to each role",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roles := model.Roles()
		if len(args) == 1 {
			role := model.Role(args[0])
			if !role.IsValid() {
				return fmt.Errorf("unknown role %q", args[0])
			}
			roles = []model.Role{role}
		}
		printCapabilities(cmd.OutOrStdout(), roles)
		return nil
	},
}

func printAccounts(w io.Writer, identities []model.Identity) {
	fmt.Fprintf(w, "%-4s %-28s %-12s %s\n", "ID", "EMAIL", "ROLE", "NAME")
	for _, identity := range identities {
		fmt.Fprintf(w, "%-4s %-28s %-12s %s\n", identity.ID, identity.Email, identity.Role, identity.Name)
	}
}

func printCapabilities(w io.Writer, roles []model.Role) {
	for _, role := range roles {
		granted := session.DerivePermissions(role).Granted()
		names := make([]string, len(granted))
		for i, c := range granted {
			names[i] = string(c)
		}
		fmt.Fprintf(w, "%s: %s\n", role, strings.Join(names, ", "))
	}
}
