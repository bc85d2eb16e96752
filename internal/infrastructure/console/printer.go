// Package console renders execution results for the CLI.
package console

import (
	"fmt"

	"github.com/fatih/color"

	"action-agent/internal/domain/entity"
)

type Printer struct{}

func NewPrinter() *Printer {
	return &Printer{}
}

// PrintResponse writes the interpreted task and one block per provider result.
func (p *Printer) PrintResponse(resp *entity.AggregateResponse) {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	bold.Printf("\nInterpreted action: %s\n", resp.Task.Action)
	for k, v := range resp.Task.Attrs {
		dim.Printf("  %s: %s\n", k, v)
	}

	for _, res := range resp.Results {
		fmt.Println()
		switch {
		case res.Skipped:
			color.New(color.FgYellow, color.Bold).Printf("— %s: not applicable\n", res.Provider)
		case res.Success:
			color.New(color.FgGreen, color.Bold).Printf("✓ %s\n", res.Provider)
		default:
			color.New(color.FgRed, color.Bold).Printf("✗ %s\n", res.Provider)
		}

		fmt.Printf("  %s\n", res.Message)
		if res.Error != "" {
			dim.Printf("  error: %s\n", res.Error)
		}
	}
}
