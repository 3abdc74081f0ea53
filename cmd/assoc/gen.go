package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/assoc/hashtable"
	"github.com/katalvlaran/assoc/keygen"
)

func newGenCmd() *cobra.Command {
	var (
		order string
		label string
		n     int
		seed  int64
	)
	table := hashtable.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a workload TOML built from a keygen order",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := keygen.ParseOrder(order)
			if err != nil {
				return err
			}
			w, err := generateWorkload(o, n, seed, label, table)
			if err != nil {
				return err
			}
			return encodeWorkload(cmd.OutOrStdout(), w)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&order, "order", "o", string(keygen.Shuffled), fmt.Sprintf("key order, one of %v", keygen.Orders()))
	f.StringVarP(&label, "label", "l", keygen.LabelExcel,
		"value labels: decimal, symbol (n <= 26), alphanumeric or excel")
	f.IntVar(&n, "n", 20, "number of keys")
	f.Int64Var(&seed, "seed", 1, "RNG seed for the shuffled order")
	f.IntVar(&table.BinCount, "bins", table.BinCount, "table bin_count")
	f.Float64Var(&table.MaxLoadFactor, "max-load", table.MaxLoadFactor, "table max_load_factor")
	f.StringVar(&table.Strategy, "strategy", table.Strategy, "table strategy: default or constant")
	f.IntVar(&table.ConstantBin, "constant-bin", 0, "bin used by the constant strategy")
	return cmd
}

// generateWorkload sets every key (the i-th set gets label(i) as its value),
// gets every key, deletes every other key and gets every key again.
func generateWorkload(order keygen.Order, n int, seed int64, label string, table hashtable.Config) (Workload, error) {
	if err := table.Validate(); err != nil {
		return Workload{}, err
	}
	keys, err := keygen.Keys(order, n, keygen.WithSeed(seed))
	if err != nil {
		return Workload{}, err
	}
	label = strings.ToLower(strings.TrimSpace(label))
	fn, err := keygen.ParseLabel(label)
	if err != nil {
		return Workload{}, err
	}
	if n > 26 && label == keygen.LabelSymbol {
		return Workload{}, fmt.Errorf("label %s holds 26 values, n=%d: %w", label, n, keygen.ErrBadSize)
	}
	labels := keygen.Labels(keygen.MustKeys(keygen.Ascending, n), fn)

	ops := make([]Op, 0, 3*n+n/2+1)
	for i, k := range keys {
		ops = append(ops, Op{Op: opSet, Key: int64(k), Value: labels[i]})
	}
	for _, k := range keys {
		ops = append(ops, Op{Op: opGet, Key: int64(k)})
	}
	for i, k := range keys {
		if i%2 == 0 {
			ops = append(ops, Op{Op: opDelete, Key: int64(k)})
		}
	}
	for _, k := range keys {
		ops = append(ops, Op{Op: opGet, Key: int64(k)})
	}
	return Workload{Table: table, Ops: ops}, nil
}
