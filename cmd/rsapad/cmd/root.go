package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "rsapad [sub-command]",
	Short: "Apply and verify RSA message-encoding padding schemes",
	Long: `rsapad is a demonstration harness for the PKCS#1 v1.5 encryption and
signature padding schemes, RSAES-OAEP, and RSASSA-PSS. It operates on
hex-encoded blocks and digests so the padding layer can be exercised
independently of an RSA key pair.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	DisableAutoGenTag: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to
// happen once to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(pkcs1encCmd)
	RootCmd.AddCommand(pkcs1sigCmd)
	RootCmd.AddCommand(oaepCmd)
	RootCmd.AddCommand(pssCmd)
}
