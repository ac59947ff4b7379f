package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/shamirfield/pkg/shamir"
)

func NewCombineCommand() *cobra.Command {
	var (
		inputFile string
		fieldName string
		encName   string
		outputHex bool
	)

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Combine shares to recover a secret",
		Long: `Combine shares produced by 'split' to recover the original secret.
The field and encoding must match the ones used when the shares were
created.`,
		Example: `  # Combine shares interactively
  shamirfield combine

  # Combine from a file produced by 'split --output'
  shamirfield combine --input shares.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prime, err := parsePrime(fieldName)
			if err != nil {
				return err
			}
			enc, err := parseEncoding(encName)
			if err != nil {
				return err
			}

			var encoded []string
			if inputFile != "" {
				encoded, err = readSharesFromFile(inputFile)
			} else {
				encoded, err = collectSharesInteractive()
			}
			if err != nil {
				return err
			}
			if len(encoded) == 0 {
				return fmt.Errorf("no shares provided")
			}

			cfg := shamir.NewConfig(prime, enc)
			mgr := shamir.NewManager(cfg)

			secret, err := mgr.CombineStrings(encoded)
			if err != nil {
				return fmt.Errorf("failed to recover secret: %w", err)
			}

			green := color.New(color.FgGreen, color.Bold)
			cyan := color.New(color.FgCyan, color.Bold)

			fmt.Println()
			green.Println("Successfully recovered secret")
			fmt.Println()

			if outputHex {
				cyan.Println("Secret (hex):")
				fmt.Printf("%x\n", secret)
			} else {
				cyan.Println("Secret:")
				fmt.Printf("%s\n", string(secret))
			}

			for i := range secret {
				secret[i] = 0
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "File containing shares (as produced by split --output)")
	cmd.Flags().StringVar(&fieldName, "field", "256", "Prime field: 128, 256, 512, or a decimal prime")
	cmd.Flags().StringVar(&encName, "encoding", "base64", "Share value encoding: base64 or hex")
	cmd.Flags().BoolVar(&outputHex, "hex", false, "Output the recovered secret as hexadecimal")

	return cmd
}

func readSharesFromFile(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var payload struct {
		Shares []string `json:"shares"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse shares file: %w", err)
	}
	if len(payload.Shares) == 0 {
		return nil, fmt.Errorf("no shares found in %s", filename)
	}

	fmt.Printf("Loaded %d shares from %s\n", len(payload.Shares), filename)
	return payload.Shares, nil
}
