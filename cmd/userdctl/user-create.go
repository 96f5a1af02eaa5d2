package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"userd/pkg/config"
	"userd/pkg/db"
	"userd/pkg/server/store/gorm"
	"userd/pkg/users"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create <username> <email>",
	Short: "Create a user account",
	Long: `Create a user account.

If no password is provided with --password, a random password is generated
and printed to STDOUT.

Example:
  userdctl user create alice alice@example.com
  userdctl user create alice alice@example.com --password s3cret`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]
		email := args[1]
		password, _ := cmd.Flags().GetString("password")

		generated := false
		if password == "" {
			var err error
			password, err = randomPassword()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to generate password: %v\n", err)
				os.Exit(1)
			}
			generated = true
		}

		account, err := createUser(username, email, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created user '%s' (id %d)\n", account.Username, account.ID)
		if generated {
			fmt.Printf("Password for %s: %s\n", account.Username, password)
		}
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().StringP("password", "p", "", "Password for the new user (default: generated)")
}

func createUser(username, email, password string) (*users.Account, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.Connect(db.Config{URL: os.Getenv("DATABASE_URL")})
	if err != nil {
		return nil, err
	}

	service := users.NewService(gorm.NewUsersStore(database), cfg.BcryptCost)
	return service.Register(username, email, password)
}

func randomPassword() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
