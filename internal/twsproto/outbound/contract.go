// Package outbound implements the per-command encoders: pure functions
// from typed parameters plus the connection's ServerVersion to a
// complete frame body. Encoders never do I/O; the facade writes what
// they return.
package outbound

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// writeContract appends the standard contract field block used by
// market-data, historical-data, and contract-details requests. includeExpired
// and secID/secIDType presence vary slightly per caller, so the tail of
// optional fields is left to each command's own encoder.
func writeContract(w *twsfield.Writer, c twsmodel.Contract) {
	w.PutInt64(c.ConID)
	w.PutString(c.Symbol)
	w.PutString(c.SecType.Wire())
	w.PutString(c.LastTradeDate)
	w.PutFloat(c.Strike)
	w.PutString(c.Right.Wire())
	w.PutString(c.Multiplier)
	w.PutString(c.Exchange)
	w.PutString(c.PrimaryExchange)
	w.PutString(c.Currency)
	w.PutString(c.LocalSymbol)
	w.PutString(c.TradingClass)
}

// writeComboLegs appends a BAG contract's combo legs (leading count then
// each leg's fields), or a zero leg count when SecType isn't Combo.
func writeComboLegs(w *twsfield.Writer, c twsmodel.Contract) {
	if c.SecType != twscat.SecTypeCombo {
		w.PutInt(0)
		return
	}
	w.PutInt(len(c.ComboLegs))
	for _, leg := range c.ComboLegs {
		w.PutInt64(leg.ConID)
		w.PutInt(leg.Ratio)
		w.PutString(leg.Action)
		w.PutString(leg.Exchange)
	}
}
