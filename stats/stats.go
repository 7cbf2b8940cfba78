// Package stats aggregates order history into per-bread sales figures.
package stats

import (
	"fmt"
	"sort"
	"time"

	"bakeryctl/domain"
)

// Window selects which orders take part in an aggregation.
type Window int

const (
	WindowAll Window = iota
	WindowToday
	WindowWeek
	WindowMonth
)

// ParseWindow maps the CLI spelling to a Window.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "", "all":
		return WindowAll, nil
	case "today":
		return WindowToday, nil
	case "week":
		return WindowWeek, nil
	case "month":
		return WindowMonth, nil
	default:
		return WindowAll, fmt.Errorf("unknown window %q (want all|today|week|month)", s)
	}
}

func (w Window) String() string {
	switch w {
	case WindowToday:
		return "today"
	case WindowWeek:
		return "week"
	case WindowMonth:
		return "month"
	default:
		return "all"
	}
}

// ProductStat is the derived aggregate for one bread. AveragePrice is the
// unit price of the last item seen for that bread, not a true average.
// RevenueShare is a percentage of the window's total revenue and is left
// zero when total revenue is zero.
type ProductStat struct {
	BreadName     string  `json:"breadName"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
	OrderCount    int     `json:"orderCount"`
	AveragePrice  float64 `json:"averagePrice"`
	RevenueShare  float64 `json:"revenueShare"`
}

// Summary holds the window-wide totals shown above the per-bread table.
type Summary struct {
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	BreadKinds    int     `json:"breadKinds"`
}

// includeOrder reports whether an order's date falls inside the window,
// evaluated against now.
func includeOrder(o domain.Order, w Window, now time.Time) bool {
	switch w {
	case WindowToday:
		oy, om, od := o.OrderDate.Date()
		ny, nm, nd := now.Date()
		return oy == ny && om == nm && od == nd
	case WindowWeek:
		return !o.OrderDate.Before(now.Add(-7 * 24 * time.Hour))
	case WindowMonth:
		monthAgo := time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())
		return !o.OrderDate.Before(monthAgo)
	default:
		return true
	}
}

// Aggregate reduces the order history to per-bread stats for the window.
// Orders outside the window are skipped entirely; a bread with no surviving
// items does not appear in the result. The result is sorted by quantity
// descending, then name, so equal quantities render deterministically.
func Aggregate(orders []domain.Order, w Window, now time.Time) []ProductStat {
	byName := make(map[string]*ProductStat)

	for _, o := range orders {
		if !includeOrder(o, w, now) {
			continue
		}
		for _, item := range o.Items {
			st, ok := byName[item.BreadName]
			if !ok {
				st = &ProductStat{BreadName: item.BreadName}
				byName[item.BreadName] = st
			}
			st.TotalQuantity += item.Quantity
			st.TotalRevenue += item.Subtotal
			// one count per item occurrence, not per order
			st.OrderCount++
			// last item's unit price wins
			st.AveragePrice = item.Price
		}
	}

	out := make([]ProductStat, 0, len(byName))
	var totalRevenue float64
	for _, st := range byName {
		out = append(out, *st)
		totalRevenue += st.TotalRevenue
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalQuantity != out[j].TotalQuantity {
			return out[i].TotalQuantity > out[j].TotalQuantity
		}
		return out[i].BreadName < out[j].BreadName
	})

	if totalRevenue > 0 {
		for i := range out {
			out[i].RevenueShare = out[i].TotalRevenue / totalRevenue * 100
		}
	}

	return out
}

// Summarize folds per-bread stats into window totals. Empty input yields
// all zeros.
func Summarize(stats []ProductStat) Summary {
	var s Summary
	for _, st := range stats {
		s.TotalQuantity += st.TotalQuantity
		s.TotalRevenue += st.TotalRevenue
		s.TotalOrders += st.OrderCount
	}
	s.BreadKinds = len(stats)
	return s
}
