package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/demolink/internal/hostaddr"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to demolink! Let's configure the server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	if cfg.Port, err = strconv.Atoi(portStr); err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}

	// 2. Host mode.
	modePrompt := promptui.Select{
		Label: "How should the root link name this host",
		Items: []string{
			"static  - a fixed host name (localhost by default)",
			"resolve - the machine's local IPv4 address",
		},
	}
	modeIdx, _, err := modePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("host mode selection: %w", err)
	}
	modes := []hostaddr.Mode{hostaddr.ModeStatic, hostaddr.ModeResolve}
	cfg.HostMode = modes[modeIdx]

	// 3. Static host.
	if cfg.HostMode == hostaddr.ModeStatic {
		hostPrompt := promptui.Prompt{
			Label:   "Host name for links",
			Default: cfg.Host,
		}
		host, err := hostPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("host: %w", err)
		}
		cfg.Host = host
	}

	// 4. CORS.
	corsPrompt := promptui.Prompt{
		Label:     "Allow requests from any origin",
		IsConfirm: true,
	}
	if _, err := corsPrompt.Run(); err == nil {
		cfg.AllowAllOrigins = true
	} else if !errors.Is(err, promptui.ErrAbort) {
		return nil, fmt.Errorf("cors: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
