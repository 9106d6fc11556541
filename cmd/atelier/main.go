package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/atelier/internal/logger"
	"github.com/mark3labs/atelier/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "▄▀█ ▀█▀ █▀▀ █   █ █▀▀ █▀█"
	logoText2 = "█▀█  █  ██▄ █▄▄ █ ██▄ █▀▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Pattern brief wizard with simulated design generation",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

atelier walks you through a five-step pattern brief (project title, garment
type, design description, measurements, review) and then runs a simulated
generation: a design preview you can rotate and regenerate, followed by a
pattern sheet with recommended fabrics and notions.

Trigger points such as Add to Cart or Download Pattern can be bound to shell
commands in .atelier.hooks.yml.`

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(setupCmd)
}
