package inbound

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// readOrder consumes the order block in the same field order
// EncodePlaceOrder writes it in: action, quantity, type, prices, tif,
// oca group, account, open/close, origin, order ref, transmit, parent
// id, combo legs, delta-neutral, hedge, algo, scale fields, conditions,
// soft dollar tier. This symmetry is what makes the open-order parser
// the single largest conditional-block consumer in the catalog.
func readOrder(r *twsfield.Reader, c *twsmodel.Contract) (twsmodel.Order, error) {
	var o twsmodel.Order
	var err error

	action, err := r.String("action")
	if err != nil {
		return o, err
	}
	if o.Action, err = twscat.ParseAction(action); err != nil {
		return o, err
	}
	if o.TotalQty, err = r.Decimal("totalQuantity"); err != nil {
		return o, err
	}
	orderType, err := r.String("orderType")
	if err != nil {
		return o, err
	}
	if o.OrderType, err = twscat.ParseOrderType(orderType); err != nil {
		return o, err
	}
	if o.LimitPrice, err = r.OptionalFloat("lmtPrice"); err != nil {
		return o, err
	}
	if o.AuxPrice, err = r.OptionalFloat("auxPrice"); err != nil {
		return o, err
	}
	tif, err := r.String("tif")
	if err != nil {
		return o, err
	}
	if o.TIF, err = twscat.ParseTimeInForce(tif); err != nil {
		return o, err
	}
	if o.OCAGroup, err = r.String("ocaGroup"); err != nil {
		return o, err
	}
	if o.Account, err = r.String("account"); err != nil {
		return o, err
	}
	if o.OpenClose, err = r.String("openClose"); err != nil {
		return o, err
	}
	if o.Origin, err = r.Int("origin"); err != nil {
		return o, err
	}
	if o.OrderRef, err = r.String("orderRef"); err != nil {
		return o, err
	}
	if o.Transmit, err = r.Bool("transmit"); err != nil {
		return o, err
	}
	parentID, err := r.Int64("parentId")
	if err != nil {
		return o, err
	}
	o.ParentID = twsmodel.OrderId(parentID)

	if c.ComboLegs, err = readComboLegs(r); err != nil {
		return o, err
	}

	if c.DeltaNeutral, err = readDeltaNeutral(r); err != nil {
		return o, err
	}

	hedgeType, err := r.String("hedgeType")
	if err != nil {
		return o, err
	}
	if hedgeType != "" {
		o.HedgeType = hedgeType
		if o.HedgeParam, err = r.String("hedgeParam"); err != nil {
			return o, err
		}
	}

	algoStrategy, err := r.String("algoStrategy")
	if err != nil {
		return o, err
	}
	if algoStrategy != "" {
		o.AlgoStrategy = algoStrategy
		n, err := r.Int("algoParamsCount")
		if err != nil {
			return o, err
		}
		for i := 0; i < n; i++ {
			tag, err := r.String("algoParam.tag")
			if err != nil {
				return o, err
			}
			val, err := r.String("algoParam.value")
			if err != nil {
				return o, err
			}
			o.AlgoParams = append(o.AlgoParams, twsmodel.TagValue{Tag: tag, Value: val})
		}
	}

	if err := readScaleFields(r, &o); err != nil {
		return o, err
	}
	if err := readConditions(r, &o); err != nil {
		return o, err
	}

	if o.SoftDollarTier.Name, err = r.String("softDollarTier.name"); err != nil {
		return o, err
	}
	if o.SoftDollarTier.Value, err = r.String("softDollarTier.value"); err != nil {
		return o, err
	}
	if o.SoftDollarTier.Display, err = r.String("softDollarTier.display"); err != nil {
		return o, err
	}

	return o, nil
}

// readScaleFields consumes the scale-order block. The server writes the
// full block only when a scale price increment was set and positive; it
// otherwise writes a single empty marker pair, mirroring
// writeScaleFields on the outbound side.
func readScaleFields(r *twsfield.Reader, o *twsmodel.Order) error {
	initLevelSize, err := r.OptionalInt("scaleInitLevelSize")
	if err != nil {
		return err
	}
	if initLevelSize == nil {
		if _, err := r.OptionalInt("scaleSubsLevelSize"); err != nil {
			return err
		}
		return nil
	}
	o.ScaleInitLevelSize = initLevelSize
	if o.ScaleSubsLevelSize, err = r.OptionalInt("scaleSubsLevelSize"); err != nil {
		return err
	}
	if o.ScalePriceIncrement, err = r.OptionalFloat("scalePriceIncrement"); err != nil {
		return err
	}
	if o.ScalePriceAdjustValue, err = r.OptionalFloat("scalePriceAdjustValue"); err != nil {
		return err
	}
	if o.ScalePriceAdjustInterval, err = r.OptionalInt("scalePriceAdjustInterval"); err != nil {
		return err
	}
	if o.ScaleProfitOffset, err = r.OptionalFloat("scaleProfitOffset"); err != nil {
		return err
	}
	if o.ScaleAutoReset, err = r.Bool("scaleAutoReset"); err != nil {
		return err
	}
	if o.ScaleInitPosition, err = r.OptionalInt("scaleInitPosition"); err != nil {
		return err
	}
	if o.ScaleInitFillQty, err = r.OptionalInt("scaleInitFillQty"); err != nil {
		return err
	}
	if o.ScaleRandomPercent, err = r.Bool("scaleRandomPercent"); err != nil {
		return err
	}
	return nil
}

func readConditions(r *twsfield.Reader, o *twsmodel.Order) error {
	n, err := r.Int("conditionsCount")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		kind, err := r.Int("condition.type")
		if err != nil {
			return err
		}
		cond := twsmodel.OrderCondition{Type: twsmodel.ConditionType(kind)}
		if cond.IsConjunction, err = r.Bool("condition.conjunction"); err != nil {
			return err
		}
		switch cond.Type {
		case twsmodel.ConditionPrice:
			if cond.ConID, err = r.Int64("condition.conId"); err != nil {
				return err
			}
			if cond.Exchange, err = r.String("condition.exchange"); err != nil {
				return err
			}
			if cond.IsMore, err = r.Bool("condition.isMore"); err != nil {
				return err
			}
			if cond.Price, err = r.Float("condition.price"); err != nil {
				return err
			}
		case twsmodel.ConditionTime:
			if cond.IsMore, err = r.Bool("condition.isMore"); err != nil {
				return err
			}
			if cond.Time, err = r.String("condition.time"); err != nil {
				return err
			}
		case twsmodel.ConditionMargin:
			if cond.IsMore, err = r.Bool("condition.isMore"); err != nil {
				return err
			}
			if cond.PercentValue, err = r.Float("condition.percent"); err != nil {
				return err
			}
		case twsmodel.ConditionExecution:
			if cond.Exchange, err = r.String("condition.exchange"); err != nil {
				return err
			}
			if cond.ConID, err = r.Int64("condition.conId"); err != nil {
				return err
			}
		case twsmodel.ConditionVolume:
			if cond.ConID, err = r.Int64("condition.conId"); err != nil {
				return err
			}
			if cond.Exchange, err = r.String("condition.exchange"); err != nil {
				return err
			}
			if cond.IsMore, err = r.Bool("condition.isMore"); err != nil {
				return err
			}
			if cond.Volume, err = r.Int64("condition.volume"); err != nil {
				return err
			}
		case twsmodel.ConditionPercentChange:
			if cond.ConID, err = r.Int64("condition.conId"); err != nil {
				return err
			}
			if cond.Exchange, err = r.String("condition.exchange"); err != nil {
				return err
			}
			if cond.IsMore, err = r.Bool("condition.isMore"); err != nil {
				return err
			}
			if cond.PctChange, err = r.Float("condition.pctChange"); err != nil {
				return err
			}
		}
		o.Conditions = append(o.Conditions, cond)
	}
	if n > 0 {
		if o.ConditionsIgnoreRth, err = r.Bool("conditionsIgnoreRth"); err != nil {
			return err
		}
		if o.ConditionsCancelOrder, err = r.Bool("conditionsCancelOrder"); err != nil {
			return err
		}
	}
	return nil
}

// ParseOpenOrder reads Incoming tag 5: orderId, contract, order, and a
// trailing status block. Every conditional block the spec calls out by
// name -- delta-neutral, hedge, algo params, scale fields, conditions,
// soft-dollar tier -- is exercised here via readOrder.
func ParseOpenOrder(r *twsfield.Reader) (twsmodel.Event, error) {
	orderID, err := r.Int64("orderId")
	if err != nil {
		return nil, err
	}
	c, err := readContract(r)
	if err != nil {
		return nil, err
	}
	o, err := readOrder(r, &c)
	if err != nil {
		return nil, err
	}
	o.OrderID = twsmodel.OrderId(orderID)
	status, err := readOrderStatusValue(r)
	if err != nil {
		return nil, err
	}
	o.Status = status
	return twsmodel.OpenOrderEvent{
		OrderID:  twsmodel.OrderId(orderID),
		Contract: c,
		Order:    o,
	}, nil
}

// ParseCompletedOrder reads Incoming tag 101: contract, order, status --
// no leading orderId. readOrder reads no order id either, so the
// returned Order's OrderID is zero.
func ParseCompletedOrder(r *twsfield.Reader) (twsmodel.Event, error) {
	c, err := readContract(r)
	if err != nil {
		return nil, err
	}
	o, err := readOrder(r, &c)
	if err != nil {
		return nil, err
	}
	status, err := readOrderStatusValue(r)
	if err != nil {
		return nil, err
	}
	o.Status = status
	return twsmodel.CompletedOrderEvent{Contract: c, Order: o}, nil
}

// ParseCompletedOrdersEnd reads Incoming tag 102, a bodiless marker.
func ParseCompletedOrdersEnd(r *twsfield.Reader) (twsmodel.Event, error) {
	return twsmodel.CompletedOrdersEndEvent{}, nil
}
