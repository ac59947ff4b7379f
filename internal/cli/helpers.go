package cli

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/Davincible/shamirfield/pkg/encoding"
	"github.com/Davincible/shamirfield/pkg/field"
)

// readSecretInteractive prompts for a secret with echo disabled when stdin
// is a terminal, falling back to a plain line read otherwise (pipes,
// redirected files).
func readSecretInteractive() ([]byte, error) {
	fmt.Print("Enter your secret: ")

	if term.IsTerminal(int(syscall.Stdin)) {
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return nil, err
		}
		return secret, nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func readFromStdin() ([]byte, error) {
	scanner := bufio.NewScanner(os.Stdin)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// collectSharesInteractive reads share strings, one per line, stopping on
// the first blank line after at least one has been collected.
func collectSharesInteractive() ([]string, error) {
	fmt.Println("Enter shares (one per line). Press Enter on a blank line when done.")

	reader := bufio.NewReader(os.Stdin)
	var shares []string
	n := 1
	for {
		fmt.Printf("Share %d: ", n)
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if len(shares) == 0 {
				continue
			}
			break
		}
		shares = append(shares, line)
		n++
	}
	return shares, nil
}

// parsePrime resolves a --field flag value to one of the module's named
// primes, or parses it as a decimal literal for a caller-supplied modulus.
func parsePrime(name string) (*big.Int, error) {
	switch strings.ToLower(name) {
	case "128":
		return field.Prime128, nil
	case "256", "":
		return field.Prime256, nil
	case "512":
		return field.Prime512, nil
	}

	p, ok := new(big.Int).SetString(name, 10)
	if !ok {
		return nil, fmt.Errorf("invalid --field value %q: expected 128, 256, 512, or a decimal prime", name)
	}
	return p, nil
}

func parseEncoding(name string) (encoding.Variant, error) {
	switch strings.ToLower(name) {
	case "base64", "":
		return encoding.Base64, nil
	case "hex":
		return encoding.Hex, nil
	default:
		return 0, fmt.Errorf("invalid --encoding value %q: expected base64 or hex", name)
	}
}
