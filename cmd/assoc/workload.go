package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/assoc/hashtable"
)

// Op names accepted in a workload.
const (
	opSet      = "set"
	opGet      = "get"
	opDelete   = "delete"
	opContains = "contains"
	opRebuild  = "rebuild"
)

var errUnknownOp = errors.New("assoc: unknown workload op")

// Workload is a table configuration plus an ordered list of operations.
//
//	[table]
//	bin_count = 4
//
//	[[ops]]
//	op = "set"
//	key = 3
//	value = "D"
type Workload struct {
	Table hashtable.Config `toml:"table"`
	Ops   []Op             `toml:"ops"`
}

// Op is one workload step. Value is used by set, Bins by rebuild.
type Op struct {
	Op    string `toml:"op"`
	Key   int64  `toml:"key"`
	Value string `toml:"value,omitempty"`
	Bins  int    `toml:"bins,omitempty"`
}

func (o Op) String() string {
	if o.Op == opRebuild {
		return fmt.Sprintf("%s %d", o.Op, o.Bins)
	}
	return fmt.Sprintf("%s %d", o.Op, o.Key)
}

// decodeWorkload reads TOML, filling [table] gaps from hashtable.DefaultConfig.
func decodeWorkload(r io.Reader) (Workload, error) {
	w := Workload{Table: hashtable.DefaultConfig()}
	if _, err := toml.NewDecoder(r).Decode(&w); err != nil {
		return Workload{}, fmt.Errorf("decode workload: %w", err)
	}
	if err := w.Validate(); err != nil {
		return Workload{}, err
	}
	return w, nil
}

// Validate checks the table config and every op name.
func (w Workload) Validate() error {
	if err := w.Table.Validate(); err != nil {
		return fmt.Errorf("workload table: %w", err)
	}
	for i, op := range w.Ops {
		switch op.Op {
		case opSet, opGet, opDelete, opContains, opRebuild:
		default:
			return fmt.Errorf("ops[%d] %q: %w", i, op.Op, errUnknownOp)
		}
	}
	return nil
}

func encodeWorkload(w io.Writer, wl Workload) error {
	return toml.NewEncoder(w).Encode(wl)
}
