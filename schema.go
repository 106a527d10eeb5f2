package standings

import "fmt"

// Schema identifies which input convention a ledger follows.
type Schema int

const (
	// Unknown means neither column set is satisfied; normalization yields
	// an empty canonical dataset.
	Unknown Schema = iota
	// NetDirect means the ledger carries {player, date, net} and nets are
	// entered directly.
	NetDirect
	// BuyinCashout means the ledger carries {player, date, buy_in, cash_out}
	// and the net is derived as cash_out - buy_in.
	BuyinCashout
)

func (s Schema) String() string {
	switch s {
	case NetDirect:
		return "net_direct"
	case BuyinCashout:
		return "buyin_cashout"
	default:
		return "unknown"
	}
}

// ParseSchema parses a string into a Schema.
func ParseSchema(s string) (Schema, error) {
	switch s {
	case "net_direct":
		return NetDirect, nil
	case "buyin_cashout":
		return BuyinCashout, nil
	case "unknown":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("unknown schema: %q", s)
	}
}

// Canonical column names.
const (
	colPlayer    = "player"
	colDate      = "date"
	colNet       = "net"
	colBuyIn     = "buy_in"
	colCashOut   = "cash_out"
	colGroup     = "group"
	colSessionID = "session_id"
)

// DetectSchema classifies a ledger from its column-name set alone.
// Column order and extra columns are irrelevant. NetDirect wins when both
// column sets are present.
func DetectSchema(t *Table) Schema {
	if t == nil {
		return Unknown
	}
	has := func(cols ...string) bool {
		for _, c := range cols {
			if !t.HasColumn(c) {
				return false
			}
		}
		return true
	}
	switch {
	case has(colPlayer, colDate, colNet):
		return NetDirect
	case has(colPlayer, colDate, colBuyIn, colCashOut):
		return BuyinCashout
	default:
		return Unknown
	}
}
