package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/shamirfield/pkg/secure"
	"github.com/Davincible/shamirfield/pkg/shamir"
)

type splitResult struct {
	Shares    []string `json:"shares"`
	Threshold int      `json:"threshold"`
	Total     int      `json:"total"`
	Field     string   `json:"field"`
	Encoding  string   `json:"encoding"`
}

func NewSplitCommand() *cobra.Command {
	var (
		parts      int
		threshold  int
		useStdin   bool
		fieldName  string
		encName    string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into multiple shares",
		Long: `Split a secret into n shares using Shamir's Secret Sharing over a
configurable prime field. The secret can be reconstructed from any
threshold number of shares.`,
		Example: `  # Split a secret into 5 shares with threshold 3
  shamirfield split --parts 5 --threshold 3

  # Split raw data from stdin, hex-encoded, over the 512-bit field
  echo "secret data" | shamirfield split --stdin --field 512 --encoding hex

  # Write shares to a file
  shamirfield split --output shares.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prime, err := parsePrime(fieldName)
			if err != nil {
				return err
			}
			enc, err := parseEncoding(encName)
			if err != nil {
				return err
			}

			var secret []byte
			if useStdin {
				secret, err = readFromStdin()
			} else {
				secret, err = readSecretInteractive()
			}
			if err != nil {
				return fmt.Errorf("failed to read secret: %w", err)
			}
			defer secure.Zero(secret)

			cfg := shamir.NewConfig(prime, enc)
			shares, err := shamir.Split(cfg, secret, threshold, parts)
			if err != nil {
				return fmt.Errorf("failed to split secret: %w", err)
			}

			result := splitResult{
				Shares:    make([]string, len(shares)),
				Threshold: threshold,
				Total:     parts,
				Field:     fieldName,
				Encoding:  enc.String(),
			}
			for i, s := range shares {
				result.Shares[i] = s.String()
			}

			if outputFile != "" {
				return saveSplitResult(result, outputFile)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return outputJSON(result)
			}
			return outputSplitText(result)
		},
	}

	cmd.Flags().IntVarP(&parts, "parts", "n", 5, "Total number of shares to create")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 3, "Minimum shares needed to reconstruct")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read secret from stdin instead of a hidden prompt")
	cmd.Flags().StringVar(&fieldName, "field", "256", "Prime field: 128, 256, 512, or a decimal prime")
	cmd.Flags().StringVar(&encName, "encoding", "base64", "Share value encoding: base64 or hex")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write shares to a JSON file instead of stdout")

	return cmd
}

func saveSplitResult(result splitResult, filename string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Printf("Shares saved to %s\n", filename)
	return nil
}

func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outputSplitText(result splitResult) error {
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	yellow.Println("=== SHAMIR SECRET SHARES ===")
	fmt.Println()

	green.Printf("Created %d shares with threshold %d (field=%s, encoding=%s)\n",
		result.Total, result.Threshold, result.Field, result.Encoding)
	fmt.Printf("Any %d shares can reconstruct the original secret\n\n", result.Threshold)

	red.Println("SECURITY WARNING:")
	fmt.Println("- Store each share in a different secure location")
	fmt.Println("- Never store shares together or electronically in plaintext")
	fmt.Println()

	for i, s := range result.Shares {
		cyan.Printf("Share %d of %d:\n", i+1, result.Total)
		fmt.Println("  " + s)
		fmt.Println()
	}

	yellow.Println("=== END OF SHARES ===")
	return nil
}
