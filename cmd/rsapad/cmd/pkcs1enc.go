package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"rsapad/pkg/rsapad"
)

var pkcs1encCmd = &cobra.Command{
	Use:   "pkcs1enc",
	Short: "Apply or remove PKCS#1 v1.5 encryption padding",
}

var (
	pkcs1encApplyMessageHex string
	pkcs1encApplyBlockSize  int

	pkcs1encRemoveBlockHex string
)

var pkcs1encApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Pad a hex-encoded message into a fixed-size block",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := hex.DecodeString(pkcs1encApplyMessageHex)
		if err != nil {
			return fmt.Errorf("decoding --message: %w", err)
		}

		em := make([]byte, pkcs1encApplyBlockSize)
		if err := rsapad.ApplyPKCS1EncryptionPadding(m, 0, em, rsapad.DefaultRandomSource); err != nil {
			return err
		}

		fmt.Println(hex.EncodeToString(em))
		return nil
	},
}

var pkcs1encRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Recover the message from a padded block",
	RunE: func(cmd *cobra.Command, args []string) error {
		em, err := hex.DecodeString(pkcs1encRemoveBlockHex)
		if err != nil {
			return fmt.Errorf("decoding --block: %w", err)
		}

		n, err := rsapad.RemovePKCS1EncryptionPadding(em, 0, nil)
		if err != nil {
			return err
		}
		out := make([]byte, n)
		if _, err := rsapad.RemovePKCS1EncryptionPadding(em, 0, out); err != nil {
			return err
		}

		fmt.Println(hex.EncodeToString(out))
		return nil
	},
}

func init() {
	pkcs1encApplyCmd.Flags().StringVar(&pkcs1encApplyMessageHex, "message", "", "hex-encoded message")
	pkcs1encApplyCmd.Flags().IntVar(&pkcs1encApplyBlockSize, "block-size", 256, "output block size in bytes (the RSA modulus size k)")
	_ = pkcs1encApplyCmd.MarkFlagRequired("message")

	pkcs1encRemoveCmd.Flags().StringVar(&pkcs1encRemoveBlockHex, "block", "", "hex-encoded padded block")
	_ = pkcs1encRemoveCmd.MarkFlagRequired("block")

	pkcs1encCmd.AddCommand(pkcs1encApplyCmd)
	pkcs1encCmd.AddCommand(pkcs1encRemoveCmd)
}
