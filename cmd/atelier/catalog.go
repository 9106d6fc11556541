package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/mark3labs/atelier/internal/config"
	"github.com/mark3labs/atelier/internal/tui/theme"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogSections = []string{"garments", "inspirations", "profiles", "measurements", "fabrics", "notions"}

var catalogFlags struct {
	yaml bool
	file string
}

var catalogCmd = &cobra.Command{
	Use:       "catalog [section]",
	Short:     "Show the reference catalog",
	Long:      "Print the garment types, inspirations, profiles, measurement fields, fabrics and notions the wizard offers.\n\nSections: " + strings.Join(catalogSections, ", "),
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: catalogSections,
	RunE:      runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogFlags.yaml, "yaml", false, "Print as YAML")
	catalogCmd.Flags().StringVarP(&catalogFlags.file, "catalog", "c", "", "Catalog YAML file (default: configured or built-in catalog)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	path := catalogFlags.file
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		path = cfg.CatalogFile
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	section := ""
	if len(args) == 1 {
		section = args[0]
	}

	var out string
	if catalogFlags.yaml {
		out, err = catalogYAML(cat, section)
	} else {
		out, err = renderCatalog(cat, section)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// sectionData returns the slice backing a catalog section.
func sectionData(cat *catalog.Catalog, section string) (any, error) {
	switch section {
	case "garments":
		return cat.GarmentTypes, nil
	case "inspirations":
		return cat.Inspirations, nil
	case "profiles":
		return cat.Profiles, nil
	case "measurements":
		return cat.Measurements, nil
	case "fabrics":
		return cat.Fabrics, nil
	case "notions":
		return cat.Notions, nil
	}
	return nil, fmt.Errorf("unknown catalog section %q", section)
}

func catalogYAML(cat *catalog.Catalog, section string) (string, error) {
	if section == "" {
		data, err := cat.YAML()
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	v, err := sectionData(cat, section)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling %s: %w", section, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// renderCatalog renders one section, or all of them, as styled lists.
func renderCatalog(cat *catalog.Catalog, section string) (string, error) {
	sections := catalogSections
	if section != "" {
		if _, err := sectionData(cat, section); err != nil {
			return "", err
		}
		sections = []string{section}
	}

	s := theme.Current().S()
	var blocks []string
	for _, name := range sections {
		var rows []string
		for _, row := range sectionRows(cat, name) {
			rows = append(rows, "  "+row)
		}
		title := s.SectionTitle.Render(strings.ToUpper(name))
		if name == "fabrics" && cat.FabricSupplier != "" {
			title += " " + s.Muted.Render("from "+cat.FabricSupplier)
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...))
	}
	return strings.Join(blocks, "\n\n"), nil
}

func sectionRows(cat *catalog.Catalog, section string) []string {
	s := theme.Current().S()
	var rows []string
	switch section {
	case "garments":
		for _, g := range cat.GarmentTypes {
			rows = append(rows, s.Text.Render(g))
		}
	case "inspirations":
		for _, in := range cat.Inspirations {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(in.Color)).Render("■")
			rows = append(rows, swatch+" "+s.Text.Render(in.Name)+" "+s.Muted.Render(in.ID))
		}
	case "profiles":
		for _, p := range cat.Profiles {
			rows = append(rows, s.Text.Render(p.Name)+" "+s.Muted.Render(fmt.Sprintf("Bust %s · Waist %s · Hips %s", p.Bust, p.Waist, p.Hips)))
		}
	case "measurements":
		for _, f := range cat.Measurements {
			label := f.Label
			if f.Required {
				label += " *"
			}
			rows = append(rows, s.Text.Render(label)+" "+s.Muted.Render(f.Key))
		}
	case "fabrics":
		for _, f := range cat.Fabrics {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Color)).Render("■")
			rows = append(rows, swatch+" "+s.Text.Render(f.Name)+" "+s.Muted.Render(f.Type+" · "+f.Yardage))
		}
	case "notions":
		for _, n := range cat.Notions {
			rows = append(rows, s.Text.Render(n.Name)+" "+s.Muted.Render(n.Detail+" · "+n.Quantity))
		}
	}
	return rows
}
