package main

import (
	"strings"
	"testing"

	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/mark3labs/atelier/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderCatalog_AllSections(t *testing.T) {
	cat := catalog.Default()
	out, err := renderCatalog(cat, "")
	require.NoError(t, err)
	out = testfixtures.Plain(out)
	for _, name := range catalogSections {
		require.Contains(t, out, strings.ToUpper(name))
	}
	require.Contains(t, out, cat.Fabrics[0].Name)
	require.Contains(t, out, cat.Profiles[0].Name)
}

func TestRenderCatalog_Section(t *testing.T) {
	cat := catalog.Default()
	out, err := renderCatalog(cat, "notions")
	require.NoError(t, err)
	out = testfixtures.Plain(out)
	require.Contains(t, out, "NOTIONS")
	require.NotContains(t, out, "FABRICS")

	_, err = renderCatalog(cat, "buttons")
	require.ErrorContains(t, err, "unknown catalog section")
}

func TestCatalogYAML_Section(t *testing.T) {
	cat := catalog.Default()
	out, err := catalogYAML(cat, "garments")
	require.NoError(t, err)

	var garments []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &garments))
	require.Equal(t, cat.GarmentTypes, garments)
}

func TestCatalogYAML_Full(t *testing.T) {
	cat := catalog.Default()
	out, err := catalogYAML(cat, "")
	require.NoError(t, err)

	parsed, err := catalog.Parse([]byte(out))
	require.NoError(t, err)
	require.Equal(t, cat.FabricIDs(), parsed.FabricIDs())
}
