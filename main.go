package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"sqlcheck/pkg/logging"
	"sqlcheck/pkg/server"
	"sqlcheck/pkg/ui"
	"sqlcheck/pkg/validate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Configuration struct {
	Serve     bool
	Addr      string
	Query     string
	CheckFile string
	LogLevel  string
	LogFormat string
	LogPath   string
}

func main() {
	config := parseArguments()

	if err := initializeLogging(config); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	switch {
	case config.Query != "":
		code := checkSingleQuery(config.Query)
		logging.Close()
		os.Exit(code)

	case config.CheckFile != "":
		if err := checkFile(config.CheckFile); err != nil {
			log.Fatalf("Failed to check file: %v", err)
		}

	case config.Serve:
		if err := server.New(config.Addr).ListenAndServe(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}

	default:
		showSplashScreen()
		if err := startInteractiveMode(); err != nil {
			log.Fatalf("Failed to start UI: %v", err)
		}
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.BoolVar(&config.Serve, "serve", false, "Run the HTTP validation API")
	flag.StringVar(&config.Addr, "addr", ":5000", "Address for the HTTP API")
	flag.StringVar(&config.Query, "query", "", "Validate a single query and exit")
	flag.StringVar(&config.CheckFile, "check", "", "SQL file to validate statement by statement")
	flag.StringVar(&config.LogLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	flag.StringVar(&config.LogFormat, "log-format", "text", "Log format (text or json)")
	flag.StringVar(&config.LogPath, "log-file", "", "Log file path (default stdout)")

	flag.Parse()

	return config
}

func initializeLogging(config Configuration) error {
	return logging.Init(logging.Config{
		Level:      logging.LogLevel(strings.ToUpper(config.LogLevel)),
		OutputPath: config.LogPath,
		Format:     config.LogFormat,
	})
}

// showSplashScreen displays an attractive welcome screen
func showSplashScreen() {
	splash := `
╔══════════════════════════════════════════════════════════════╗
║                                                              ║
║     ███████╗ ██████╗ ██╗      ██████╗██╗  ██╗██╗  ██╗        ║
║     ██╔════╝██╔═══██╗██║     ██╔════╝██║  ██║██║ ██╔╝        ║
║     ███████╗██║   ██║██║     ██║     ███████║█████╔╝         ║
║     ╚════██║██║▄▄ ██║██║     ██║     ██╔══██║██╔═██╗         ║
║     ███████║╚██████╔╝███████╗╚██████╗██║  ██║██║  ██╗        ║
║     ╚══════╝ ╚══▀▀═╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝        ║
║                                                              ║
║              Syntax Checking For Your SQL Queries            ║
║                      Written With Love in Go 🔍              ║
╚══════════════════════════════════════════════════════════════╝
`

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true)

	fmt.Println(style.Render(splash))
	time.Sleep(2 * time.Second)
}

// checkSingleQuery validates one query and reports the outcome,
// returning the process exit code.
func checkSingleQuery(query string) int {
	outcome := validate.Validate(query)
	if outcome.Valid {
		fmt.Printf("✅ %s\n", outcome.Message)
		return 0
	}

	fmt.Printf("⚠️  %s: %s\n", outcome.Category, outcome.Message)
	return 1
}

// checkFile validates SQL statements from a file one at a time
func checkFile(filename string) error {
	fmt.Printf("📥 Checking statements from %s...\n", filename)
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %v", err)
	}

	statements := strings.Split(string(content), ";")
	validCount := 0
	total := 0
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		total++

		outcome := validate.Validate(stmt)
		if outcome.Valid {
			validCount++
			continue
		}
		fmt.Printf("⚠️  Invalid statement: %s\n   %s: %s\n",
			truncateString(stmt, 50), outcome.Category, outcome.Message)
	}

	fmt.Printf("✅ Check completed: %d/%d statements valid\n", validCount, total)

	return nil
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode() error {
	model := ui.NewModel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}

	return nil
}

// truncateString limits string length for display
func truncateString(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
