package cli

import (
	"context"
	"fmt"

	"github.com/andy/billfold/internal/domain"
	"github.com/spf13/cobra"
)

var businessesCmd = &cobra.Command{
	Use:   "businesses",
	Short: "Manage businesses",
	Long:  `List and save the businesses that issue your invoices.`,
}

var businessesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved businesses",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		businesses, err := appInstance.BusinessRepo.LoadAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to list businesses: %w", err)
		}

		if len(businesses) == 0 {
			fmt.Println("No businesses found")
			return nil
		}

		fmt.Printf("%-30s %-25s %-15s\n", "Name", "Email", "Phone")
		fmt.Println("----------------------------------------------------------------------")

		for _, b := range businesses {
			fmt.Printf("%-30s %-25s %-15s\n", truncate(b.Name, 30), truncate(b.Email, 25), b.Phone)
		}

		fmt.Printf("\nTotal: %d business(es)\n", len(businesses))
		return nil
	},
}

var businessesSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save a business (replaces any saved business with the same name)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		business := domain.Business{Name: args[0]}
		business.Email, _ = cmd.Flags().GetString("email")
		business.Address, _ = cmd.Flags().GetString("address")
		business.City, _ = cmd.Flags().GetString("city")
		business.State, _ = cmd.Flags().GetString("state")
		business.Zip, _ = cmd.Flags().GetString("zip")
		business.Phone, _ = cmd.Flags().GetString("phone")

		if err := appInstance.BusinessRepo.Upsert(ctx, business); err != nil {
			return fmt.Errorf("failed to save business: %w", err)
		}

		fmt.Printf("✓ Business saved: %s\n", business.Name)
		return nil
	},
}

func init() {
	businessesCmd.AddCommand(businessesListCmd)
	businessesCmd.AddCommand(businessesSaveCmd)

	businessesSaveCmd.Flags().String("email", "", "Business email")
	businessesSaveCmd.Flags().String("address", "", "Street address")
	businessesSaveCmd.Flags().String("city", "", "City")
	businessesSaveCmd.Flags().String("state", "", "State")
	businessesSaveCmd.Flags().String("zip", "", "Zip code")
	businessesSaveCmd.Flags().String("phone", "", "Phone number")
}
