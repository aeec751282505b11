package mentor

import (
	"fmt"
	"strings"
)

// systemPrompt pins the mentor persona. The rules force Socratic questioning
// instead of trade calls, so the critique stays advisory.
const systemPrompt = `You are an institutional trading mentor. Critique the trade setup you are given.

RULES:
1. Be Socratic. Ask questions that expose logic gaps.
2. If logic is emotional ("I feel"), warn them.
3. If they don't mention liquidity or market sessions, point it out.
4. Do not tell them what to do.
5. Keep it professional and institutional.`

// buildPrompt renders the user message for a critique request.
func buildPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User Stage: %s\n", req.Stage)
	fmt.Fprintf(&b, "Symbol: %s\n", req.Symbol)
	fmt.Fprintf(&b, "Bias: %s\n", req.Bias)
	fmt.Fprintf(&b, "Entry: %.5f, SL: %.5f, TP: %.5f\n\n", req.EntryPrice, req.StopLoss, req.TakeProfit)
	fmt.Fprintf(&b, "User's Logic: %q\n", req.Thesis)
	return b.String()
}
