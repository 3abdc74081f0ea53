package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/assoc"
	"github.com/katalvlaran/assoc/bst"
	"github.com/katalvlaran/assoc/hashtable"
)

// Container kinds accepted by --kind.
const (
	kindChained = "chained"
	kindOpen    = "open"
	kindBST     = "bst"
)

var (
	errUnknownKind        = errors.New("assoc: unknown container kind")
	errRebuildUnsupported = errors.New("assoc: container cannot be rebuilt")
)

// rebuilder and loadReporter are implemented by both hash tables.
type rebuilder interface {
	Rebuild(newBinCount int) error
}

type loadReporter interface {
	LoadFactor() *big.Rat
}

func newReplayCmd(logCfg *LogConfig) *cobra.Command {
	var path, kind string
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a TOML workload and print the resulting container",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*logCfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open workload: %w", err)
			}
			defer f.Close()

			w, err := decodeWorkload(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return replay(w, kind, cmd.OutOrStdout(), log)
		},
	}
	cmd.Flags().StringVarP(&path, "workload", "w", "", "workload TOML file")
	cmd.Flags().StringVarP(&kind, "kind", "k", kindChained, "container: chained, open or bst")
	_ = cmd.MarkFlagRequired("workload")
	return cmd
}

func newDict(kind string, cfg hashtable.Config, log *zap.Logger) (assoc.Dict[int64, string], error) {
	switch kind {
	case kindChained:
		t, err := hashtable.NewChainedFromConfig[int64, string](cfg, hashtable.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return t, nil
	case kindOpen:
		t, err := hashtable.NewOpenFromConfig[int64, string](cfg, hashtable.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return t, nil
	case kindBST:
		return bst.New[int64, string](bst.WithLogger(log)), nil
	}
	return nil, fmt.Errorf("%q: %w", kind, errUnknownKind)
}

// replay applies w.Ops in order. get and contains print one line each; the
// summary (len, load factor for hash tables, dump) follows the last op.
func replay(w Workload, kind string, out io.Writer, log *zap.Logger) error {
	d, err := newDict(kind, w.Table, log)
	if err != nil {
		return err
	}
	log.Info("replay started", zap.String("kind", kind), zap.Int("ops", len(w.Ops)))

	for i, op := range w.Ops {
		if err := apply(d, op, out, log); err != nil {
			return fmt.Errorf("ops[%d] %s: %w", i, op, err)
		}
	}

	fmt.Fprintf(out, "len: %d\n", d.Len())
	if lr, ok := d.(loadReporter); ok {
		fmt.Fprintf(out, "load factor: %s\n", lr.LoadFactor().RatString())
	}
	fmt.Fprintln(out, d.Dump())
	log.Info("replay finished", zap.Int("len", d.Len()))
	return nil
}

func apply(d assoc.Dict[int64, string], op Op, out io.Writer, log *zap.Logger) error {
	switch op.Op {
	case opSet:
		inserted, err := d.Set(op.Key, op.Value)
		if err != nil {
			return err
		}
		if !inserted {
			log.Debug("set kept existing value", zap.Int64("key", op.Key))
		}
	case opGet:
		v, err := assoc.Lookup(d, op.Key)
		switch {
		case errors.Is(err, assoc.ErrNotFound):
			fmt.Fprintf(out, "get %d: <not found>\n", op.Key)
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "get %d: %s\n", op.Key, v)
		}
	case opDelete:
		if !d.Delete(op.Key) {
			log.Debug("delete missed", zap.Int64("key", op.Key))
		}
	case opContains:
		fmt.Fprintf(out, "contains %d: %t\n", op.Key, d.Contains(op.Key))
	case opRebuild:
		r, ok := d.(rebuilder)
		if !ok {
			return errRebuildUnsupported
		}
		return r.Rebuild(op.Bins)
	default:
		return errUnknownOp
	}
	return nil
}
