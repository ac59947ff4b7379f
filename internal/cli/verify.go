package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/shamirfield/pkg/share"
)

func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [share]",
		Short: "Verify the integrity of a share",
		Long:  `Parse a share's canonical string form and verify its checksum.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded := strings.TrimSpace(args[0])

			s, err := share.FromString(encoded)
			if err != nil {
				return fmt.Errorf("invalid share format: %w", err)
			}

			if err := s.VerifyChecksum(); err != nil {
				return fmt.Errorf("share failed checksum verification: %w", err)
			}

			green := color.New(color.FgGreen, color.Bold)
			yellow := color.New(color.FgYellow)

			fmt.Println()
			green.Println("Share is valid")
			fmt.Println()

			yellow.Println("Share details:")
			fmt.Printf("  Index:     %d\n", s.Index())
			fmt.Printf("  Threshold: %d\n", s.Threshold())
			fmt.Printf("  Checksum:  %s\n", s.Checksum())
			fmt.Printf("  Value:     %d bytes\n", len(s.Value()))

			fmt.Println()
			fmt.Println("Remember: you need at least the threshold number of shares to reconstruct the secret.")

			return nil
		},
	}

	return cmd
}
