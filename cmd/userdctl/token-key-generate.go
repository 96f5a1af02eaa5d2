package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"userd/pkg/token"
)

// tokenKeyGenerateCmd represents the token-key > generate command
var tokenKeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a session token signing key",
	Long: `
Generate a session token signing key

Use this command to generate a new Base64-encoded 256 bit signing key. Once
generated, this key should be placed into the environment of the userd server.
It is used to sign the session tokens issued on login.

Example:

$ export USERD_TOKEN_KEY="$(userdctl token-key generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := token.GenerateKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to generate key:", err)
			os.Exit(1)
		}
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(key))
	},
}

func init() {
	tokenKeyCmd.AddCommand(tokenKeyGenerateCmd)
}
