// Package autostart registers kbtrackpad to start on login.
package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"text/template"
)

// Label identifies the launch agent and the Run registry value.
const Label = "com.kbtrackpad.agent"

// ErrUnsupportedPlatform is returned on platforms without a login mechanism.
var ErrUnsupportedPlatform = errors.New("autostart: platform not supported")

const macLaunchAgentPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>{{.Label}}</string>
    <key>ProgramArguments</key>
    <array>
        <string>{{.ExecutablePath}}</string>
{{- range .Args}}
        <string>{{.}}</string>
{{- end}}
    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <false/>
    <key>ProcessType</key>
    <string>Interactive</string>
</dict>
</plist>
`

var plistTemplate = template.Must(template.New("plist").Parse(macLaunchAgentPlist))

// Manager enables and disables auto-start for one executable.
type Manager struct {
	GOOS           string
	Home           string
	ExecutablePath string
	Args           []string
}

// New returns a Manager for the running executable and user.
func New() (*Manager, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &Manager{
		GOOS:           runtime.GOOS,
		Home:           home,
		ExecutablePath: execPath,
		Args:           []string{"run"},
	}, nil
}

// Enable enables auto-start on login
func (m *Manager) Enable() error {
	switch m.GOOS {
	case "darwin":
		return m.enableMac()
	case "windows":
		return enableWindows(m.command())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, m.GOOS)
	}
}

// Disable disables auto-start on login
func (m *Manager) Disable() error {
	switch m.GOOS {
	case "darwin":
		return m.disableMac()
	case "windows":
		return disableWindows()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, m.GOOS)
	}
}

// IsEnabled checks if auto-start is enabled
func (m *Manager) IsEnabled() bool {
	switch m.GOOS {
	case "darwin":
		_, err := os.Stat(m.PlistPath())
		return err == nil
	case "windows":
		return isEnabledWindows()
	default:
		return false
	}
}

// PlistPath is the launch agent location on macOS.
func (m *Manager) PlistPath() string {
	return filepath.Join(m.Home, "Library", "LaunchAgents", Label+".plist")
}

// command is the Run value on Windows: the quoted executable and its args.
func (m *Manager) command() string {
	cmd := `"` + m.ExecutablePath + `"`
	for _, a := range m.Args {
		cmd += " " + a
	}
	return cmd
}

func (m *Manager) enableMac() error {
	plistPath := m.PlistPath()
	if err := os.MkdirAll(filepath.Dir(plistPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(plistPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return plistTemplate.Execute(f, struct {
		Label          string
		ExecutablePath string
		Args           []string
	}{Label, m.ExecutablePath, m.Args})
}

func (m *Manager) disableMac() error {
	if err := os.Remove(m.PlistPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
