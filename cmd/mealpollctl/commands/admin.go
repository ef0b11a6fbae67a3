package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	admindomain "mealpoll-go/internal/domain/admin"
	adminrepo "mealpoll-go/internal/repository/admin"
	"github.com/spf13/cobra"
)

var (
	adminFirstName string
	adminLastName  string
	adminEmail     string
	adminPassword  string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage administrator accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, cfg, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		password := adminPassword
		if password == "" {
			password, err = promptPassword()
			if err != nil {
				return err
			}
		}

		service := admindomain.NewService(adminrepo.NewPostgres(dbConn), cfg.Auth.SessionTTL)
		account, err := service.CreateAdmin(cmd.Context(), admindomain.CreateInput{
			FirstName: adminFirstName,
			LastName:  adminLastName,
			Email:     adminEmail,
			Password:  password,
		})
		if err != nil {
			return err
		}

		fmt.Printf("created admin %d (%s)\n", account.ID, account.Email)
		return nil
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List administrator accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, cfg, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		service := admindomain.NewService(adminrepo.NewPostgres(dbConn), cfg.Auth.SessionTTL)
		accounts, err := service.ListAdmins(cmd.Context())
		if err != nil {
			return err
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tEMAIL\tNAME")
		for _, account := range accounts {
			fmt.Fprintf(writer, "%d\t%s\t%s %s\n", account.ID, account.Email, account.FirstName, account.LastName)
		}
		return writer.Flush()
	},
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminFirstName, "first-name", "", "Administrator first name")
	adminCreateCmd.Flags().StringVar(&adminLastName, "last-name", "", "Administrator last name")
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "Administrator email address")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "Password (prompted when omitted)")
	_ = adminCreateCmd.MarkFlagRequired("first-name")
	_ = adminCreateCmd.MarkFlagRequired("last-name")
	_ = adminCreateCmd.MarkFlagRequired("email")

	adminCmd.AddCommand(adminCreateCmd)
	adminCmd.AddCommand(adminListCmd)
	rootCmd.AddCommand(adminCmd)
}
