package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"noctis/internal/circuits"
	"noctis/internal/circuits/balance"
	"noctis/internal/circuits/withdraw"
	"noctis/internal/field/babybear"
	"noctis/internal/field/bn254fr"
	"noctis/internal/merkle"
	"noctis/internal/prover"
	"noctis/internal/vault"
)

// parseElement accepts either a decimal string or a 0x-prefixed hex string.
func parseElement(s string) (bn254fr.Element, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return bn254fr.FromHex(s)
	}
	return bn254fr.FromDecimal(s)
}

func formatElement(cfg *Config, e bn254fr.Element) string {
	if cfg.HexOutput {
		return e.Hex()
	}
	return e.Decimal()
}

func newCommitCmd(cfg func() *Config) *cobra.Command {
	var secretStr, balanceStr, randomnessStr string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Derive a note commitment; randomness is drawn fresh when omitted",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := parseElement(secretStr)
			if err != nil {
				return fmt.Errorf("secret: %w", err)
			}
			bal, err := parseElement(balanceStr)
			if err != nil {
				return fmt.Errorf("balance: %w", err)
			}
			var randomness bn254fr.Element
			if randomnessStr != "" {
				if randomness, err = parseElement(randomnessStr); err != nil {
					return fmt.Errorf("randomness: %w", err)
				}
			} else {
				if randomness, err = vault.RandomElement(); err != nil {
					return err
				}
				log.Info().Str("randomness", randomness.Decimal()).Msg("sampled note randomness")
			}

			note := vault.Note{Secret: secret, Balance: bal, Randomness: randomness}
			c := cfg()
			fmt.Fprintln(cmd.OutOrStdout(), "spending_key_hash:", formatElement(c, vault.SpendingKeyHash(secret)))
			fmt.Fprintln(cmd.OutOrStdout(), "randomness:       ", formatElement(c, randomness))
			fmt.Fprintln(cmd.OutOrStdout(), "commitment:       ", formatElement(c, note.Commitment()))
			return nil
		},
	}

	cmd.Flags().StringVar(&secretStr, "secret", "", "note secret (decimal or 0x hex)")
	cmd.Flags().StringVar(&balanceStr, "balance", "", "note balance (decimal or 0x hex)")
	cmd.Flags().StringVar(&randomnessStr, "randomness", "", "note randomness; sampled when empty")
	cmd.MarkFlagRequired("secret")
	cmd.MarkFlagRequired("balance")
	return cmd
}

func newNullifierCmd(cfg func() *Config) *cobra.Command {
	var secretStr string
	var index uint64

	cmd := &cobra.Command{
		Use:   "nullifier",
		Short: "Derive the spend tag for a note at a tree index",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := parseElement(secretStr)
			if err != nil {
				return fmt.Errorf("secret: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatElement(cfg(), vault.Nullifier(secret, index)))
			return nil
		},
	}

	cmd.Flags().StringVar(&secretStr, "secret", "", "note secret (decimal or 0x hex)")
	cmd.Flags().Uint64Var(&index, "index", 0, "leaf index of the note commitment")
	cmd.MarkFlagRequired("secret")
	return cmd
}

func newZerosCmd(cfg func() *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "zeros",
		Short: "Print the empty-subtree digest table the contract initializes from",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg()
			for i, z := range vault.ZeroHashes(c.TreeDepth) {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d %s\n", i, formatElement(c, z))
			}
			return nil
		},
	}
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Build withdrawal execution traces offline",
	}
	cmd.AddCommand(newTraceWithdrawCmd(), newTraceBalanceCmd())
	return cmd
}

func parseSmall(s string) (babybear.Element, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return babybear.Zero(), fmt.Errorf("parsing %q: %w", s, err)
	}
	return babybear.FromUint64(v), nil
}

func newTraceWithdrawCmd() *cobra.Command {
	var secretStr, preimageStr, recipientStr, denomStr string
	var leaves []string
	var index int

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Build a fixed-denomination withdrawal trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := parseSmall(secretStr)
			if err != nil {
				return err
			}
			preimage, err := parseSmall(preimageStr)
			if err != nil {
				return err
			}
			recipient, err := parseSmall(recipientStr)
			if err != nil {
				return err
			}
			denom, err := parseSmall(denomStr)
			if err != nil {
				return err
			}

			note := withdraw.Note{Secret: secret, NullifierPreimage: preimage}
			tree, err := buildTree(leaves, note.Commitment(), index)
			if err != nil {
				return err
			}
			path, err := tree.Proof(index)
			if err != nil {
				return err
			}

			circuit := withdraw.Circuit{
				Root:         tree.Root(),
				Nullifier:    note.Nullifier(),
				Recipient:    recipient,
				Denomination: denom,
			}
			trace, err := circuit.GenerateTrace(withdraw.Witness{
				Secret:            secret,
				NullifierPreimage: preimage,
				Path:              path,
			})
			if err != nil {
				return err
			}
			return printTrace(cmd, trace, 4)
		},
	}

	cmd.Flags().StringVar(&secretStr, "secret", "", "note secret")
	cmd.Flags().StringVar(&preimageStr, "preimage", "", "nullifier preimage")
	cmd.Flags().StringVar(&recipientStr, "recipient", "0", "recipient tag")
	cmd.Flags().StringVar(&denomStr, "denomination", "0", "fixed denomination")
	cmd.Flags().StringSliceVar(&leaves, "leaves", nil, "other commitments in the tree, in leaf order")
	cmd.Flags().IntVar(&index, "index", 0, "leaf index of the note commitment")
	cmd.MarkFlagRequired("secret")
	cmd.MarkFlagRequired("preimage")
	return cmd
}

func newTraceBalanceCmd() *cobra.Command {
	var secretStr, balanceStr, randomnessStr, recipientStr, amountStr, newRandStr string
	var leaves []string
	var index int

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Build a balance withdrawal trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := parseSmall(secretStr)
			if err != nil {
				return err
			}
			bal, err := parseSmall(balanceStr)
			if err != nil {
				return err
			}
			randomness, err := parseSmall(randomnessStr)
			if err != nil {
				return err
			}
			recipient, err := parseSmall(recipientStr)
			if err != nil {
				return err
			}
			amount, err := parseSmall(amountStr)
			if err != nil {
				return err
			}
			newRand, err := parseSmall(newRandStr)
			if err != nil {
				return err
			}

			leaf := balance.Commitment(secret, bal, randomness)
			tree, err := buildTree(leaves, leaf, index)
			if err != nil {
				return err
			}
			path, err := tree.Proof(index)
			if err != nil {
				return err
			}

			circuit := balance.Circuit{
				Root:      tree.Root(),
				Nullifier: balance.Nullifier(secret, uint64(index)),
				Recipient: recipient,
				Amount:    amount,
			}
			if bal.Uint64() > amount.Uint64() {
				diff := bal.Uint64() - amount.Uint64()
				circuit.ChangeCommitment = balance.Commitment(secret, babybear.FromUint64(diff), newRand)
			}
			trace, err := circuit.GenerateTrace(balance.Witness{
				Secret:        secret,
				Balance:       bal,
				Randomness:    randomness,
				NoteIndex:     uint64(index),
				Path:          path,
				NewRandomness: newRand,
			})
			if err != nil {
				return err
			}
			return printTrace(cmd, trace, 5)
		},
	}

	cmd.Flags().StringVar(&secretStr, "secret", "", "note secret")
	cmd.Flags().StringVar(&balanceStr, "balance", "", "note balance")
	cmd.Flags().StringVar(&randomnessStr, "randomness", "0", "note randomness")
	cmd.Flags().StringVar(&recipientStr, "recipient", "0", "recipient tag")
	cmd.Flags().StringVar(&amountStr, "amount", "0", "withdrawal amount")
	cmd.Flags().StringVar(&newRandStr, "new-randomness", "0", "change note randomness")
	cmd.Flags().StringSliceVar(&leaves, "leaves", nil, "other commitments in the tree, in leaf order")
	cmd.Flags().IntVar(&index, "index", 0, "leaf index of the note commitment")
	cmd.MarkFlagRequired("secret")
	cmd.MarkFlagRequired("balance")
	return cmd
}

// buildTree assembles the commitment tree from the supplied leaves, placing
// the spender's own commitment at index.
func buildTree(leafStrs []string, own babybear.Element, index int) (*merkle.Tree[babybear.Element], error) {
	n := len(leafStrs)
	if index < 0 || index > n {
		return nil, fmt.Errorf("index %d outside tree of %d leaves", index, n+1)
	}
	leaves := make([]babybear.Element, 0, n+1)
	for i, s := range leafStrs {
		if i == index {
			leaves = append(leaves, own)
		}
		leaf, err := parseSmall(s)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, leaf)
	}
	if index == n {
		leaves = append(leaves, own)
	}
	return merkle.NewTree(withdraw.Scheme, leaves)
}

func printTrace(cmd *cobra.Command, trace *circuits.Trace, publics int) error {
	log.Info().
		Int("rows", trace.NumRows()).
		Int("width", trace.Width()).
		Msg("trace generated")
	for i := 0; i < publics; i++ {
		fmt.Fprintf(cmd.OutOrStdout(), "public[%d] = %s\n", i, trace.At(0, i))
	}
	calldata := prover.TraceCalldata(trace.Cells()[:publics])
	fmt.Fprintf(cmd.OutOrStdout(), "calldata: 0x%x\n", calldata)
	return nil
}
