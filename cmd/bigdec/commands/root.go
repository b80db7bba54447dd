package commands

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/db47h/bigdec"
)

var (
	plain   bool
	jsonOut bool
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "bigdec",
		Short:        "Exact decimal integer arithmetic",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if plain && jsonOut {
				return fmt.Errorf("--plain and --json are mutually exclusive")
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&plain, "plain", false, "print digits without separators")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")

	root.AddCommand(powCmd(), factCmd(), binomCmd(), fibCmd(), benchCmd())
	return root
}

// result is the JSON form of a computed value.
type result struct {
	Op     string `json:"op"`
	Digits int    `json:"digits"`
	Value  string `json:"value"`
}

func printResult(w io.Writer, op string, x bigdec.Int) error {
	switch {
	case jsonOut:
		return json.NewEncoder(w).Encode(result{Op: op, Digits: x.DigitCount(), Value: x.Text()})
	case plain:
		_, err := fmt.Fprintf(w, "%d\n", x)
		return err
	default:
		_, err := fmt.Fprintf(w, "%v\n", x)
		return err
	}
}

func parseUint(name, arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return v, nil
}
