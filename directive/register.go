package directive

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	tableMu sync.RWMutex
	table   = map[string]Symbol{}
)

var ErrSymbolExists = errors.New("symbol exists")

// Register claims a head symbol. The seven built-in directives register
// themselves at init; a duplicate name is a programming error, so init
// panics on one.
func Register(s Symbol) error {
	tableMu.Lock()
	defer tableMu.Unlock()
	if _, present := table[s.String()]; present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	table[s.String()] = s
	return nil
}

func init() {
	for _, s := range []Symbol{
		Add(), Remove(), Swap(), Wrap(), Splice(), Let(), Literal(),
	} {
		if err := Register(s); err != nil {
			panic(err)
		}
	}
}

func Lookup(s string) Symbol {
	tableMu.RLock()
	defer tableMu.RUnlock()
	return table[s]
}

// Symbols returns the registered directives sorted by name.
func Symbols() []Symbol {
	tableMu.RLock()
	defer tableMu.RUnlock()
	res := make([]Symbol, 0, len(table))
	for _, s := range table {
		res = append(res, s)
	}
	slices.SortFunc(res, func(a, b Symbol) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}
