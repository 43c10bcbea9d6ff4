package commands

import (
	"github.com/spf13/cobra"

	"solkit/internal/codec"
	"solkit/internal/crypto"
)

func keygenCmd(st *rootState) *cobra.Command {
	var withFingerprint bool
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := st.wire.Keypairs.GenerateKeypair(cmd.Context())
			if err != nil || !withFingerprint {
				return printResult(cmd.OutOrStdout(), kp, err)
			}

			pub, err := codec.ParsePublicKey(kp.Pubkey)
			if err != nil {
				return printResult(cmd.OutOrStdout(), nil, err)
			}
			return printResult(cmd.OutOrStdout(), struct {
				Pubkey      string `json:"pubkey"`
				Secret      string `json:"secret"`
				Fingerprint string `json:"fingerprint"`
			}{kp.Pubkey, kp.Secret, crypto.Fingerprint(pub)}, nil)
		},
	}
	cmd.Flags().BoolVar(&withFingerprint, "fingerprint", false, "include a short public-key fingerprint")
	return cmd
}
