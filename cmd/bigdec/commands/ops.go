package commands

import (
	"github.com/spf13/cobra"

	"github.com/db47h/bigdec"
	"github.com/db47h/bigdec/math"
)

func powCmd() *cobra.Command {
	var fast bool
	cmd := &cobra.Command{
		Use:   "pow BASE EXP",
		Short: "Raise BASE to the power EXP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseUint("base", args[0])
			if err != nil {
				return err
			}
			exp, err := parseUint("exponent", args[1])
			if err != nil {
				return err
			}
			x := bigdec.FromUint64(base)
			var z bigdec.Int
			if fast {
				z = math.Pow(x, exp)
			} else {
				z = x.Pow(uint(exp))
			}
			return printResult(cmd.OutOrStdout(), "pow", z)
		},
	}
	cmd.Flags().BoolVar(&fast, "fast", false, "use exponentiation by squaring")
	return cmd
}

func factCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fact N",
		Short: "Compute N!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint("n", args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), "fact", math.Factorial(n))
		},
	}
}

func binomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "binom N K",
		Short: "Compute the binomial coefficient C(N, K)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint("n", args[0])
			if err != nil {
				return err
			}
			k, err := parseUint("k", args[1])
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), "binom", math.Binomial(n, k))
		},
	}
}

func fibCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fib N",
		Short: "Compute the N-th Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint("n", args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), "fib", math.Fibonacci(n))
		},
	}
}
