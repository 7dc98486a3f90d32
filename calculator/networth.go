package calculator

import "fmt"

// NetWorth returns sum(assets) - sum(liabilities). Elements are summed in order.
func NetWorth(assets, liabilities []float64) (float64, error) {
	total := 0.0
	for i, a := range assets {
		if err := nonNegative(fmt.Sprintf("assets[%d]", i), a); err != nil {
			return 0, err
		}
		total += a
	}

	owed := 0.0
	for i, l := range liabilities {
		if err := nonNegative(fmt.Sprintf("liabilities[%d]", i), l); err != nil {
			return 0, err
		}
		owed += l
	}

	return finite("net_worth", total-owed)
}
