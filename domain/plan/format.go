package plan

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders n with thousands separators, e.g. 49500 -> "49,500".
func FormatAmount(n int64) string {
	return amountPrinter.Sprintf("%d", n)
}

// FormatUSD renders n as a dollar amount, e.g. "$49,500".
func FormatUSD(n int64) string {
	return "$" + FormatAmount(n)
}

// RoomsLabel is the short room count used in headlines: "5+ Rooms" -> "5+".
// Empty selections read as "3", matching the calculator default.
func RoomsLabel(rooms string) string {
	if rooms == "" {
		return "3"
	}
	return strings.Replace(rooms, " Rooms", "", 1)
}

// ValueOrNA is used on the result screens for unset fields.
func ValueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
