package money_test

import (
	"fmt"

	"github.com/exactvalues/money"
	"github.com/exactvalues/money/exact"
)

// In this example, sales tax is added to a listed price using a percent
// factor, rounding the tax to whole cents.
func Example_salesTax() {
	price := money.MustParse("$1,234.56")

	tax, err := price.MulString("8.25%")
	if err != nil {
		panic(err)
	}
	tax = tax.Round(exact.HalfExpand)

	total, err := price.Add(tax)
	if err != nil {
		panic(err)
	}

	fmt.Println("Price =", price)
	fmt.Println("Tax   =", tax)
	fmt.Println("Total =", total)
	// Output:
	// Price = USD 1234.56
	// Tax   = USD 101.85
	// Total = USD 1336.41
}

// In this example, a bill is split between three parties, the middle one
// paying a double share. The shares always sum back to the original
// amount, down to the last cent.
func Example_billSplit() {
	bill := money.MustParse("$100")

	shares, err := bill.Allocate([]int64{1, 2, 1})
	if err != nil {
		panic(err)
	}
	for _, s := range shares {
		fmt.Println(s)
	}
	// Output:
	// USD 25.00
	// USD 50.00
	// USD 25.00
}

// In this example, an amount given in satoshis is parsed into bitcoin and
// rendered back in both denominations.
func Example_subUnits() {
	m := money.MustParse("100 sat")
	fmt.Println(m)

	s, err := m.DisplayUnit("sat")
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// BTC 0.00000100
	// 100 sats
}

// In this example, a price band is cut into three consecutive tiers whose
// widths sum exactly to the width of the band.
func Example_priceTiers() {
	band, err := money.ParsePriceRange("$50 - $100")
	if err != nil {
		panic(err)
	}

	tiers, err := band.Split(3)
	if err != nil {
		panic(err)
	}
	for _, tier := range tiers {
		fmt.Println(tier)
	}
	// Output:
	// USD 50.00 - USD 66.67
	// USD 66.67 - USD 83.34
	// USD 83.34 - USD 100.00
}
