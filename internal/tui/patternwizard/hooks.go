package patternwizard

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/atelier/internal/generation"
	"github.com/mark3labs/atelier/internal/hooks"
	"github.com/mark3labs/atelier/internal/logger"
)

// HookRunner runs the external commands bound to a trigger point.
// *hooks.Config satisfies it.
type HookRunner interface {
	Run(ctx context.Context, name, workDir string, vars hooks.Variables) (string, error)
}

// hookVars builds template variables from the active session, if any.
func (m *Model) hookVars() hooks.Variables {
	vars := hooks.Variables{CartURL: m.opts.CartURL}
	if m.result == nil {
		snap := m.wiz.Snapshot()
		vars.Project = snap.ProjectTitle
		vars.Garment = snap.Garment
		vars.Description = snap.Description
		return vars
	}

	s := m.result.session
	in := s.Input()
	vars.Session = s.ID()
	vars.Project = in.ProjectTitle
	vars.Garment = in.Garment
	vars.Description = in.Description
	if p, ok := s.Phase().(generation.PatternReady); ok {
		cat := s.Catalog()
		for _, f := range cat.Fabrics {
			if p.HasFabric(f.ID) {
				vars.Fabrics = append(vars.Fabrics, f.Name)
			}
		}
		for _, n := range cat.Notions {
			if p.HasNotion(n.ID) {
				vars.Notions = append(vars.Notions, n.Name)
			}
		}
	}
	return vars
}

// runHook returns a command that runs the hooks bound to name off the
// event loop.
func (m *Model) runHook(name string) tea.Cmd {
	if m.opts.Hooks == nil {
		return nil
	}
	ctx := m.ctx
	runner := m.opts.Hooks
	workDir := m.opts.WorkDir
	vars := m.hookVars()
	return func() tea.Msg {
		out, err := runner.Run(ctx, name, workDir, vars)
		if err != nil {
			logger.Warn("Hook %s failed: %v", name, err)
		}
		return HookFinishedMsg{Name: name, Output: out, Err: err}
	}
}

// toastText picks what to show for a finished hook. Piped output wins; the
// pattern-ready actions fall back to a confirmation.
func (m *Model) toastText(msg HookFinishedMsg) string {
	if msg.Err != nil {
		return fmt.Sprintf("%s failed: %v", msg.Name, msg.Err)
	}
	if out := strings.TrimSpace(msg.Output); out != "" {
		first, _, _ := strings.Cut(out, "\n")
		return first
	}
	switch msg.Name {
	case generation.ActionAddToCart.String():
		host := m.opts.CartURL
		if u, err := url.Parse(m.opts.CartURL); err == nil && u.Host != "" {
			host = strings.TrimPrefix(u.Host, "www.")
		}
		return "Redirecting to " + host
	case generation.ActionDownloadPattern.String():
		return "Pattern PDF download started"
	case generation.ActionPrintPattern.String():
		return "Sent to printer"
	case generation.ActionViewMyPatterns.String():
		return "Opening My Patterns"
	case generation.ActionListOnMarketplace.String():
		return "Listed on Marketplace"
	}
	return ""
}
