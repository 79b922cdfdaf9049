package cli

import (
	"context"
	"fmt"

	"github.com/andy/billfold/internal/domain"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
	Long:  `List, add, edit, and remove clients.`,
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clients, err := appInstance.ClientRepo.LoadAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		if len(clients) == 0 {
			fmt.Println("No clients found")
			return nil
		}

		// Print table header
		fmt.Printf("%-36s %-25s %-25s %-15s\n", "ID", "Name", "Email", "Phone")
		fmt.Println("------------------------------------------------------------------------------------------------------")

		for _, client := range clients {
			fmt.Printf("%-36s %-25s %-25s %-15s\n",
				client.ID,
				truncate(client.Name, 25),
				truncate(client.Email, 25),
				client.Phone,
			)
		}

		fmt.Printf("\nTotal: %d client(s)\n", len(clients))
		return nil
	},
}

var clientsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client := domain.Client{Name: args[0]}
		client.Email, _ = cmd.Flags().GetString("email")
		client.Address, _ = cmd.Flags().GetString("address")
		client.City, _ = cmd.Flags().GetString("city")
		client.State, _ = cmd.Flags().GetString("state")
		client.Zip, _ = cmd.Flags().GetString("zip")
		client.Phone, _ = cmd.Flags().GetString("phone")

		saved, err := appInstance.ClientRepo.Upsert(ctx, client)
		if err != nil {
			return fmt.Errorf("failed to save client: %w", err)
		}

		fmt.Printf("✓ Client saved: %s (ID: %s)\n", saved.Name, saved.ID)
		return nil
	},
}

var clientsEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := appInstance.ClientRepo.FindByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get client: %w", err)
		}
		if client == nil {
			return fmt.Errorf("client not found")
		}

		// Update fields if flags provided
		updated := *client
		if cmd.Flags().Changed("name") {
			updated.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("email") {
			updated.Email, _ = cmd.Flags().GetString("email")
		}
		if cmd.Flags().Changed("address") {
			updated.Address, _ = cmd.Flags().GetString("address")
		}
		if cmd.Flags().Changed("city") {
			updated.City, _ = cmd.Flags().GetString("city")
		}
		if cmd.Flags().Changed("state") {
			updated.State, _ = cmd.Flags().GetString("state")
		}
		if cmd.Flags().Changed("zip") {
			updated.Zip, _ = cmd.Flags().GetString("zip")
		}
		if cmd.Flags().Changed("phone") {
			updated.Phone, _ = cmd.Flags().GetString("phone")
		}

		if _, err := appInstance.ClientRepo.Upsert(ctx, updated); err != nil {
			return fmt.Errorf("failed to update client: %w", err)
		}

		fmt.Printf("✓ Client updated: %s\n", updated.Name)
		return nil
	},
}

var clientsRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := appInstance.ClientRepo.FindByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get client: %w", err)
		}
		if client == nil {
			return fmt.Errorf("client not found")
		}

		if !confirmPrompt(fmt.Sprintf("Remove client %q?", client.Name)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.ClientRepo.Remove(ctx, client.ID); err != nil {
			return fmt.Errorf("failed to remove client: %w", err)
		}

		fmt.Printf("✓ Client removed: %s\n", client.Name)
		return nil
	},
}

func init() {
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsEditCmd)
	clientsCmd.AddCommand(clientsRemoveCmd)

	// Add flags
	clientsAddCmd.Flags().String("email", "", "Client email")
	clientsAddCmd.Flags().String("address", "", "Street address")
	clientsAddCmd.Flags().String("city", "", "City")
	clientsAddCmd.Flags().String("state", "", "State")
	clientsAddCmd.Flags().String("zip", "", "Zip code")
	clientsAddCmd.Flags().String("phone", "", "Phone number")

	// Edit flags
	clientsEditCmd.Flags().String("name", "", "New name")
	clientsEditCmd.Flags().String("email", "", "New email")
	clientsEditCmd.Flags().String("address", "", "New street address")
	clientsEditCmd.Flags().String("city", "", "New city")
	clientsEditCmd.Flags().String("state", "", "New state")
	clientsEditCmd.Flags().String("zip", "", "New zip code")
	clientsEditCmd.Flags().String("phone", "", "New phone number")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
