package display

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
)

// printer groups large amounts with thousands separators (1,000,000)
var printer = message.NewPrinter(language.English)

// FormatAmount renders an integer with thousands separators
func FormatAmount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatSigned renders an amount with an explicit leading sign
func FormatSigned(n int) string {
	if n >= 0 {
		return "+" + FormatAmount(n)
	}
	return FormatAmount(n)
}

// FormatResult renders a classified roll the way the session log shows it:
//
//	1-2-3 HIFUMI x2 LOSS
//	4-5-6 SHIGORO x2 WIN
//	2-2-5 ME:5 x1
//	3-4-5 MENASHI
func FormatResult(c domain.Classification) string {
	diceStr := c.Roll.String()

	if c.Combination == domain.CombinationMenashi {
		return fmt.Sprintf("%s %s", diceStr, c.Combination)
	}

	mult := c.Multiplier
	if mult < 0 {
		mult = -mult
	}
	multStr := fmt.Sprintf("x%d", mult)

	switch {
	case c.Multiplier < 0:
		return fmt.Sprintf("%s %s %s LOSS", diceStr, c.Combination, multStr)
	case c.IsAutoWin():
		return fmt.Sprintf("%s %s %s WIN", diceStr, c.Combination, multStr)
	default:
		return fmt.Sprintf("%s %s:%d %s", diceStr, c.Combination, c.Value, multStr)
	}
}
