package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"userd/pkg/config"
	"userd/pkg/db"
	"userd/pkg/server/store/gorm"
	"userd/pkg/users"
)

// userResetPasswordCmd represents the user reset-password command
var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email>",
	Short: "Reset a user's password",
	Long: `Reset the password for a user.

The new password is printed to stdout.

Example:
  userdctl user reset-password alice@example.com`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]

		password, err := resetPassword(email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reset password for %s: %v\n", email, err)
			os.Exit(1)
		}
		fmt.Println(password)
	},
}

func init() {
	userCmd.AddCommand(userResetPasswordCmd)
}

func resetPassword(email string) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.Connect(db.Config{URL: os.Getenv("DATABASE_URL")})
	if err != nil {
		return "", err
	}

	usersStore := gorm.NewUsersStore(database)
	service := users.NewService(usersStore, cfg.BcryptCost)

	user, err := usersStore.FindByEmail(email)
	if err != nil {
		return "", err
	}

	password, err := randomPassword()
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}

	if _, err := service.Update(user.ID, users.UpdateParams{Password: &password}); err != nil {
		return "", err
	}

	return password, nil
}
