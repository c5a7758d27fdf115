// Package seed generates synthetic bank transactions for local development.
package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

const (
	DefaultCount = 500

	lookbackDays = 365
)

var merchants = []string{
	"VZW*WEBSITE PMT", "7-ELEVEN 0042", "WLMRT ST#1024", "AMZN MKTP US*2K4H91JF0", "NETFLIX.COM",
	"SPOTIFY USA", "UBER *TRIP", "LYFT *RIDE", "SHELL OIL 57442136", "CHEVRON 0012345",
	"COSTCO WHSE #1234", "TARGET 00012345", "WALGREENS #9876", "CVS/PHARMACY #4521", "STARBUCKS 12345",
	"DUNKIN #351423", "MCDONALD'S F12345", "CHICK-FIL-A #01234", "CHIPOTLE 1234", "DOMINOS 12345",
	"GRUBHUB*SEAMLESS", "DOORDASH*DASHPASS", "INSTACART", "WHOLEFDS MKT 10234", "TRADER JOE'S #123",
	"KROGER #12345", "PUBLIX #1234", "ALDI 76001", "HOME DEPOT #1234", "LOWES #01234",
	"BESTBUY 00000123", "APPLE.COM/BILL", "GOOGLE *CLOUD", "MSFT *XBOX", "STEAM PURCHASE",
	"HULU*SUBSCRIPTION", "DISNEY PLUS", "ATT*BILL PMT", "TMOBILE*POSTPAID", "COMCAST CABLE",
	"DUKE ENERGY", "WATER UTILITY PMT", "STATE FARM INS", "GEICO *AUTO", "PLANET FITNESS",
	"PELOTON*MEMBERSHIP", "ADOBE *CREATIVE", "DROPBOX*PLAN", "GITHUB INC", "AWS *SERVICES",
	"VENMO *PAYMENT", "PAYPAL *TRANSFER", "ZELLE *SENT", "SQ *CASH APP", "USPS PO 123456789",
	"EBAY O*12-34567-89012", "ETSY.COM", "IKEA US ONLINE", "TJ MAXX #1234", "NIKE.COM",
	"PETCO #12345", "CHEWY.COM", "AUTOZONE #12345", "JIFFY LUBE #1234", "MARRIOTT HTL*STAY",
	"AIRBNB*RESERVATION", "EXPEDIA*FLIGHT", "DELTA AIR*TICKET", "SOUTHWEST AIR",
}

// categories includes "" for uncategorized rows.
var categories = []string{
	"Utilities", "Groceries", "Dining", "Transportation", "Entertainment", "Shopping",
	"Healthcare", "Insurance", "Subscriptions", "Travel", "Gas", "Personal Care",
	"Pets", "Home", "Electronics", "Clothing", "Fitness", "Transfers", "",
}

var locations = []string{
	"SAN FRAN CA", "NEW YORK NY", "HOUSTON TX", "MIAMI FL", "SEATTLE WA",
	"CHICAGO IL", "PHILA PA", "COLUMBUS OH", "ATLANTA GA", "CHARLOTTE NC",
}

// Generate returns n synthetic transactions for accountID dated within the
// year before now. The output depends only on the arguments.
func Generate(r *rand.Rand, n int, accountID uuid.UUID, now time.Time) []sqlconfig.TransactionCreate {
	base := now.AddDate(0, 0, -lookbackDays)
	out := make([]sqlconfig.TransactionCreate, 0, n)

	for i := 0; i < n; i++ {
		transactionDate := base.
			AddDate(0, 0, r.IntN(lookbackDays)).
			Add(time.Duration(r.IntN(24)) * time.Hour).
			Add(time.Duration(r.IntN(60)) * time.Minute)

		var category null.Val[string]
		if c := categories[r.IntN(len(categories))]; c != "" {
			category = null.From(c)
		}

		out = append(out, sqlconfig.TransactionCreate{
			AccountID:       accountID,
			RawDescription:  null.From(rawDescription(r)),
			Category:        category,
			Amount:          decimal.NewNullDecimal(amount(r)),
			TransactionDate: transactionDate,
		})
	}

	return out
}

func rawDescription(r *rand.Rand) string {
	var sb strings.Builder
	sb.WriteString(merchants[r.IntN(len(merchants))])
	if r.IntN(2) == 0 {
		fmt.Fprintf(&sb, " %05d", r.IntN(100000))
	}
	if r.IntN(3) == 0 {
		sb.WriteString(" ")
		sb.WriteString(locations[r.IntN(len(locations))])
	}
	return sb.String()
}

// amount is an expense in [-500.00, -5.00] four times in five, otherwise
// income in [100.00, 3000.00]. Cents are drawn as integers.
func amount(r *rand.Rand) decimal.Decimal {
	if r.IntN(5) < 4 {
		cents := 500 + r.Int64N(50000-500+1)
		return decimal.New(-cents, -2)
	}
	cents := 10000 + r.Int64N(300000-10000+1)
	return decimal.New(cents, -2)
}
