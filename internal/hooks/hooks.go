package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/atelier/internal/logger"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the hooks configuration file.
const ConfigFileName = ".atelier.hooks.yml"

// LoadConfig loads the hooks configuration from the working directory.
// Returns nil if the config file doesn't exist (hooks are optional).
func LoadConfig(workDir string) (*Config, error) {
	return LoadFile(filepath.Join(workDir, ConfigFileName))
}

// LoadFile loads a hooks configuration from path. Returns nil if the file
// doesn't exist and an error only if it exists but cannot be parsed.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No hooks config found at %s", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded hooks config from %s (version: %d)", path, cfg.Version)
	return &cfg, nil
}

// Variables holds template variables that can be expanded in hook commands.
type Variables struct {
	Session     string
	Project     string
	Garment     string
	Description string
	Fabrics     []string // Selected fabric names
	Notions     []string // Selected notion names
	CartURL     string
}

// Slug is the URL-safe form of the project title.
func (v Variables) Slug() string {
	return slug.Make(v.Project)
}

// Count is the number of selected fabrics plus notions.
func (v Variables) Count() int {
	return len(v.Fabrics) + len(v.Notions)
}

// Run executes every hook bound to name and returns the piped output.
// A nil config or an unbound name is a no-op.
func (c *Config) Run(ctx context.Context, name, workDir string, vars Variables) (string, error) {
	hooks := c.Lookup(name)
	if len(hooks) == 0 {
		return "", nil
	}
	logger.Info("Running %d %s hook(s)", len(hooks), name)
	return ExecuteAllPiped(ctx, hooks, workDir, vars)
}

// ExecuteAllPiped runs hooks in order and joins the output of those with
// pipe_output set. Stops early only on context cancellation.
func ExecuteAllPiped(ctx context.Context, hooks []*HookConfig, workDir string, vars Variables) (string, error) {
	var piped []string
	for _, hook := range hooks {
		output, err := Execute(ctx, hook, workDir, vars)
		if err != nil {
			return strings.Join(piped, "\n"), err
		}
		if hook.PipeOutput {
			piped = append(piped, output)
		}
	}
	return strings.Join(piped, "\n"), nil
}

// Execute runs a hook command and returns its output.
// Template variables in the command ({{session}}, {{project}}, ...) are expanded before execution.
// On error, returns an error message as output and nil error (graceful degradation).
// Only returns error for context cancellation.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables) (string, error) {
	if hook == nil || hook.Command == "" {
		return "", nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir
	// Don't wait on pipes held open by orphaned children after a kill
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	// Check for context cancellation (propagate this)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if execCtx.Err() == context.DeadlineExceeded {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		return fmt.Sprintf("[Hook timed out after %ds]\nPartial output:\n%s", timeout, stdout.String()), nil
	}

	if err != nil {
		logger.Warn("Hook command failed: %v", err)
		output := stdout.String()
		if stderr.Len() > 0 {
			output += "\n[stderr]\n" + stderr.String()
		}
		return fmt.Sprintf("[Hook command failed: %v]\n%s", err, output), nil
	}

	output := stdout.String()
	if stderr.Len() > 0 {
		logger.Debug("Hook stderr: %s", stderr.String())
		output += "\n[stderr]\n" + stderr.String()
	}

	logger.Debug("Hook executed successfully, output length: %d bytes", len(output))
	return output, nil
}

// expandVariables replaces {{variable}} placeholders in the command string.
func expandVariables(command string, vars Variables) string {
	r := strings.NewReplacer(
		"{{session}}", vars.Session,
		"{{project}}", vars.Project,
		"{{slug}}", vars.Slug(),
		"{{garment}}", vars.Garment,
		"{{description}}", vars.Description,
		"{{fabrics}}", strings.Join(vars.Fabrics, ", "),
		"{{notions}}", strings.Join(vars.Notions, ", "),
		"{{count}}", strconv.Itoa(vars.Count()),
		"{{cart_url}}", vars.CartURL,
	)
	return r.Replace(command)
}
