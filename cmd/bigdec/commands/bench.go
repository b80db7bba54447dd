package commands

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/db47h/bigdec"
)

type benchResult struct {
	Op         string  `json:"op"`
	Iterations int     `json:"iterations"`
	NsPerOp    float64 `json:"ns_per_op"`
}

// benchOps times Int operations on two copies of 2**128-1.
func benchOps(iters int) []benchResult {
	x := bigdec.FromUint128(^uint64(0), ^uint64(0))
	y := bigdec.FromUint128(^uint64(0), ^uint64(0))
	ops := []struct {
		name string
		f    func() bigdec.Int
	}{
		{"add", func() bigdec.Int { return x.Add(y) }},
		{"mul", func() bigdec.Int { return x.Mul(y) }},
		{"pow", func() bigdec.Int { return x.Pow(32) }},
	}

	res := make([]benchResult, 0, len(ops))
	for _, op := range ops {
		start := time.Now()
		for i := 0; i < iters; i++ {
			_ = op.f()
		}
		d := time.Since(start)
		res = append(res, benchResult{
			Op:         op.name,
			Iterations: iters,
			NsPerOp:    float64(d.Nanoseconds()) / float64(iters),
		})
	}
	return res
}

func benchCmd() *cobra.Command {
	var iters int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time addition, multiplication and exponentiation of 128 bits operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if iters <= 0 {
				return fmt.Errorf("invalid iteration count %d", iters)
			}
			res := benchOps(iters)
			w := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(w).Encode(res)
			}
			for _, r := range res {
				if _, err := fmt.Fprintf(w, "%-4s %8d iterations %12.0f ns/op\n", r.Op, r.Iterations, r.NsPerOp); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&iters, "iters", 100, "number of iterations per operation")
	return cmd
}
