package commands

import (
	"github.com/spf13/cobra"

	"solkit/internal/codec"
	"solkit/internal/domain"
	"solkit/internal/token"
)

type decodedMint struct {
	Decimals        uint8  `json:"decimals"`
	MintAuthority   string `json:"mintAuthority"`
	FreezeAuthority string `json:"freezeAuthority,omitempty"`
}

func mintCmd(st *rootState) *cobra.Command {
	var (
		req    domain.CreateTokenMintRequest
		decode string
	)
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Build a token InitializeMint instruction",
		Long: "Build a token InitializeMint instruction, or with --decode print the\n" +
			"fields of a Base64 instruction payload.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("decode") {
				out, err := decodeMintData(decode)
				return printResult(cmd.OutOrStdout(), out, err)
			}
			resp, err := st.wire.Mints.CreateTokenMint(cmd.Context(), req)
			return printResult(cmd.OutOrStdout(), resp, err)
		},
	}
	cmd.Flags().StringVar(&req.Mint, "mint", "", "Base58 mint account")
	cmd.Flags().StringVar(&req.MintAuthority, "authority", "", "Base58 mint authority")
	cmd.Flags().Uint8Var(&req.Decimals, "decimals", 0, "token decimals (0-9)")
	cmd.Flags().StringVar(&req.FreezeAuthority, "freeze", "", "Base58 freeze authority (default: mint authority)")
	cmd.Flags().StringVar(&decode, "decode", "", "decode a Base64 InitializeMint payload instead of building one")
	return cmd
}

func decodeMintData(b64 string) (decodedMint, error) {
	data, err := codec.DecodeBase64(b64)
	if err != nil {
		return decodedMint{}, err
	}
	args, err := token.DecodeInitializeMint(data)
	if err != nil {
		return decodedMint{}, err
	}
	out := decodedMint{Decimals: args.Decimals, MintAuthority: args.MintAuthority.String()}
	if args.FreezeAuthority != nil {
		out.FreezeAuthority = args.FreezeAuthority.String()
	}
	return out, nil
}
