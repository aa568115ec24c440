package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green: owned, fulfilled
	ColorWarning   = lipgloss.Color("#FFB800") // yellow: pending, notices
	ColorError     = lipgloss.Color("#FF4444") // red: inline errors
	ColorAddress   = lipgloss.Color("#00B4D8") // cyan: addresses, hashes
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold: amounts
	ColorMeta      = lipgloss.Color("#555555") // dim gray: timestamps, metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue: UI chrome
	ColorCoffee    = lipgloss.Color("#C08552") // roast brown: branding, tabs
	ColorFunc      = lipgloss.Color("#9B5DE5") // purple: decoded function names
	ColorHighlight = lipgloss.Color("#F15BB5") // pink: selected rows
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorAddress).Bold(true)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleFunc    = lipgloss.NewStyle().Foreground(ColorFunc).Bold(true)
	StyleBrand   = lipgloss.NewStyle().Foreground(ColorCoffee).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Underline(true)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorCoffee).
			Bold(true).
			MarginBottom(1)

	StyleTab = lipgloss.NewStyle().
			Foreground(ColorMeta).
			Padding(0, 1)

	StyleTabActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorCoffee).
			Bold(true).
			Padding(0, 1)

	StyleDim = lipgloss.NewStyle().Foreground(ColorMeta)
)

// Version is printed in the banner and by `plzscan --version`.
var Version = "0.1.0"

// Banner returns the plzscan ASCII banner.
func Banner() string {
	art := `
  ██████╗ ██╗     ███████╗███████╗ ██████╗ █████╗ ███╗   ██╗
  ██╔══██╗██║     ╚══███╔╝██╔════╝██╔════╝██╔══██╗████╗  ██║
  ██████╔╝██║       ███╔╝ ███████╗██║     ███████║██╔██╗ ██║
  ██╔═══╝ ██║      ███╔╝  ╚════██║██║     ██╔══██║██║╚██╗██║
  ██║     ███████╗███████╗███████║╚██████╗██║  ██║██║ ╚████║
  ╚═╝     ╚══════╝╚══════╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝`

	tagline := StyleMeta.Render("     PLZCoffee Block Explorer  ☕  v" + Version)
	features := StyleMeta.Render("  ✦ PLZToken  ✦ PLZNFT  ✦ Ordering  ✦ calldata decoder")

	return StyleBrand.Render(art) + "\n" + tagline + "\n" + features + "\n"
}

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Info formats an informational message.
func Info(msg string) string { return StyleInfo.Render("ℹ " + msg) }

// Hint formats a follow-up suggestion.
func Hint(msg string) string { return StyleMeta.Render("💡 " + msg) }

// Addr formats an address.
func Addr(a string) string { return StyleAddress.Render(a) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// Func formats a decoded function name. The unknown sentinel is dimmed.
func Func(name string) string {
	if name == "N/A" {
		return StyleDim.Render(name)
	}
	return StyleFunc.Render(name)
}

// TruncateAddr shortens an address for display: 0x1234…5678.
func TruncateAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// padR pads s to visible width n (ANSI-safe using lipgloss.Width).
func padR(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

// trimErr keeps the informative tail of a wrapped RPC error.
func trimErr(s string) string {
	for _, marker := range []string{"dial tcp", "connection refused", "context deadline", "execution reverted"} {
		if idx := strings.Index(s, marker); idx >= 0 {
			s = s[idx:]
			break
		}
	}
	if len([]rune(s)) > 60 {
		return string([]rune(s)[:60]) + "…"
	}
	return s
}
