package adspend

// PeriodTotals are the raw sums for one window. Nil means the window had no rows.
type PeriodTotals struct {
	Spend       *float64
	Conversions *int64
}

// Metrics derives revenue, CAC and ROAS. CAC needs conversions > 0 and ROAS
// needs spend > 0; otherwise they are nil.
func (p PeriodTotals) Metrics() Metrics {
	m := Metrics{Spend: p.Spend, Conversions: p.Conversions}
	if p.Conversions != nil {
		revenue := float64(*p.Conversions) * RevenuePerConversion
		m.Revenue = &revenue
	}
	if p.Spend != nil && p.Conversions != nil && *p.Conversions > 0 {
		cac := *p.Spend / float64(*p.Conversions)
		m.CAC = &cac
	}
	if p.Spend != nil && *p.Spend > 0 && m.Revenue != nil {
		roas := *m.Revenue / *p.Spend
		m.ROAS = &roas
	}
	return m
}

// Compare builds the five comparison rows in fixed order.
func Compare(last, prev PeriodTotals) []ComparisonRow {
	l, p := last.Metrics(), prev.Metrics()
	return []ComparisonRow{
		compareValues(MetricSpend, l.Spend, p.Spend),
		compareValues(MetricConversions, intToFloat(l.Conversions), intToFloat(p.Conversions)),
		compareValues(MetricRevenue, l.Revenue, p.Revenue),
		compareValues(MetricCAC, l.CAC, p.CAC),
		compareValues(MetricROAS, l.ROAS, p.ROAS),
	}
}

// compareValues: delta_abs needs both sides, delta_pct additionally needs prev != 0.
func compareValues(metric string, last, prev *float64) ComparisonRow {
	row := ComparisonRow{Metric: metric, Last30d: last, Prev30d: prev}
	if last == nil || prev == nil {
		return row
	}
	delta := *last - *prev
	row.DeltaAbs = &delta
	if *prev != 0 {
		pct := delta / *prev * 100
		row.DeltaPct = &pct
	}
	return row
}

func intToFloat(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
