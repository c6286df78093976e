package setup

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/late/config"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// ErrCancelled returned when the user declines to save.
var ErrCancelled = errors.New("setup cancelled by user")

func screen(step string) {
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("$LATE CONFIG WIZARD"))
	fmt.Println(stepStyle.Render(step))
}

// RunTUI launches the terminal configuration wizard and writes the yaml
// config to path.
func RunTUI(path string) error {
	defaults := config.Default()

	var (
		endpoint        = defaults.EndpointURL
		contract        = defaults.ContractAddress
		pollIntervalStr = defaults.PollInterval.String()
		supplyStr       = fmt.Sprint(defaults.TotalSupply)
		logLevel        = defaults.LogLevel
		confirm         bool
	)

	screen("STEP 1: DATA SOURCE")
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Better late than never.\n"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pair endpoint").
				Description("DexScreener pair URL").
				Value(&endpoint).
				Validate(validateEndpoint),
			huh.NewInput().
				Title("Poll interval").
				Description("Duration string (e.g. 30s, 1m)").
				Value(&pollIntervalStr).
				Validate(validateInterval),
		),
	).Run()
	if err != nil {
		return err
	}

	screen("STEP 2: TOKEN")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Contract address").
				Value(&contract).
				Validate(validateContract),
			huh.NewInput().
				Title("Total supply").
				Value(&supplyStr).
				Validate(validateSupply),
		),
	).Run()
	if err != nil {
		return err
	}

	screen("STEP 3: LOGGING")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&logLevel).
				Validate(validateLogLevel),
		),
	).Run()
	if err != nil {
		return err
	}

	screen("FINAL CONFIRMATION")
	summary := fmt.Sprintf(
		"Endpoint: %s\nContract: %s\nSupply: %s\nInterval: %s\nLog level: %s\n",
		endpoint, contract, supplyStr, pollIntervalStr, logLevel,
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save and start").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}
	if !confirm {
		return ErrCancelled
	}

	data, err := render(endpoint, contract, pollIntervalStr, supplyStr, logLevel)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to save config file")
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(fmt.Sprintf("\n✓ Configuration saved to %s\nStarting dashboard...", path)))
	time.Sleep(1500 * time.Millisecond)
	return nil
}

// render builds the yaml document from the wizard answers.
func render(endpoint, contract, pollInterval, supply, logLevel string) ([]byte, error) {
	interval, err := time.ParseDuration(pollInterval)
	if err != nil {
		return nil, errors.Wrap(err, "invalid poll interval")
	}
	total, err := decimal.NewFromString(supply)
	if err != nil {
		return nil, errors.Wrap(err, "invalid total supply")
	}

	conf := config.Default()
	conf.EndpointURL = strings.TrimSpace(endpoint)
	conf.ContractAddress = strings.TrimSpace(contract)
	conf.PollInterval = interval
	conf.TotalSupply = total.IntPart()
	conf.LogLevel = logLevel
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(conf.ToTmp())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate yaml")
	}
	return data, nil
}

func validateEndpoint(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("must be an http(s) url")
	}
	return nil
}

func validateInterval(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if d < time.Second {
		return fmt.Errorf("must be at least 1s")
	}
	return nil
}

func validateContract(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("contract address cannot be empty")
	}
	return nil
}

func validateSupply(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("must be a valid number")
	}
	if !d.IsInteger() || !d.IsPositive() {
		return fmt.Errorf("must be a positive whole number")
	}
	return nil
}

func validateLogLevel(s string) error {
	var lvl zapcore.Level
	return lvl.UnmarshalText([]byte(s))
}
