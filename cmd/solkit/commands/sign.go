package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"solkit/internal/domain"
)

// PrivateKeyEnv supplies the signing secret when --key is not given.
const PrivateKeyEnv = "SOLKIT_PRIVATE_KEY"

// sign <message>: sign message with a Base58 secret.
func signCmd(st *rootState) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with a Base58 secret key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				key = strings.TrimSpace(os.Getenv(PrivateKeyEnv))
			}
			resp, err := st.wire.Signing.SignMessage(cmd.Context(), domain.SignMessageRequest{
				Message:    args[0],
				PrivateKey: key,
			})
			return printResult(cmd.OutOrStdout(), resp, err)
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "Base58 secret (32-byte seed or 64-byte seed+pubkey); defaults to $"+PrivateKeyEnv)
	return cmd
}

// verify <message>: check a Base64 signature under a Base58 public key.
func verifyCmd(st *rootState) *cobra.Command {
	var signature, pubkey string
	cmd := &cobra.Command{
		Use:   "verify <message>",
		Short: "Verify a Base64 signature over a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := st.wire.Signing.VerifyMessage(cmd.Context(), domain.VerifyMessageRequest{
				Message:   args[0],
				Signature: signature,
				PublicKey: pubkey,
			})
			return printResult(cmd.OutOrStdout(), resp, err)
		},
	}
	cmd.Flags().StringVar(&signature, "signature", "", "Base64 signature")
	cmd.Flags().StringVar(&pubkey, "pubkey", "", "Base58 public key")
	_ = cmd.MarkFlagRequired("signature")
	_ = cmd.MarkFlagRequired("pubkey")
	return cmd
}
