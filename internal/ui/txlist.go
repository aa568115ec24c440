package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mohsinsiddi/plzscan/internal/explorer"
)

const (
	wBlock = 8
	wHash  = 13
	wParty = 13
	wValue = 12
	wFunc  = 18
	wTime  = 19
)

// TxColumns are the columns of the transaction table.
func TxColumns() []Column {
	return []Column{
		{Title: "BLOCK", Width: wBlock},
		{Title: "HASH", Width: wHash},
		{Title: "FROM", Width: wParty},
		{Title: "TO", Width: wParty},
		{Title: "VALUE (ETH)", Width: wValue},
		{Title: "FUNCTION", Width: wFunc},
		{Title: "TIME", Width: wTime},
	}
}

// TxRow renders one transaction as a table row.
func TxRow(tx explorer.TxView) Row {
	return Row{
		fmt.Sprintf("#%d", tx.Block),
		TruncateAddr(tx.Hash),
		tx.FromName,
		tx.ToName,
		tx.ValueETH,
		tx.Call.Name,
		FormatTime(tx.Time),
	}
}

// FormatTime renders a block timestamp in local time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// TxDetail renders the full record of one transaction, including the
// decoded parameters as JSON.
func TxDetail(tx explorer.TxView) string {
	to := tx.To
	if to == "" {
		to = "(contract creation)"
	}
	fn := tx.Call.Name
	if !tx.Call.IsUnknown() && tx.Call.Contract != "" {
		fn = tx.Call.Contract + "." + tx.Call.Name
	}
	block := KeyValueBlock("Transaction", [][2]string{
		{"Hash", tx.Hash},
		{"Block", fmt.Sprintf("#%d (index %d)", tx.Block, tx.Index)},
		{"Time", FormatTime(tx.Time)},
		{"From", labelled(tx.From, tx.FromName)},
		{"To", labelled(to, tx.ToName)},
		{"Value", tx.ValueETH + " ETH"},
		{"Function", fn},
	})
	return block + "\n" + StyleMeta.Render("Params") + "\n" + tx.Call.ParamsJSON() + "\n"
}

func labelled(addr, name string) string {
	if name == "" || strings.Contains(name, "…") || name == addr {
		return addr
	}
	return addr + " (" + name + ")"
}

// txList is a scrollable transaction table with an expandable detail
// pane. The interactive list and the explorer's Transactions tab share it.
type txList struct {
	txs      []explorer.TxView
	cursor   int
	offset   int
	height   int // visible rows; 0 means all
	expanded bool
}

func (l *txList) set(txs []explorer.TxView) {
	l.txs = txs
	if l.cursor >= len(txs) {
		l.cursor = max(len(txs)-1, 0)
	}
	l.expanded = false
	l.clamp()
}

func (l *txList) selected() (explorer.TxView, bool) {
	if l.cursor < 0 || l.cursor >= len(l.txs) {
		return explorer.TxView{}, false
	}
	return l.txs[l.cursor], true
}

// handleKey applies navigation keys and reports whether the key was used.
func (l *txList) handleKey(key string) bool {
	switch key {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.txs)-1 {
			l.cursor++
		}
	case "pgup":
		l.cursor = max(l.cursor-l.page(), 0)
	case "pgdown":
		l.cursor = min(l.cursor+l.page(), max(len(l.txs)-1, 0))
	case "home", "g":
		l.cursor = 0
	case "end", "G":
		l.cursor = max(len(l.txs)-1, 0)
	case "enter", " ":
		l.expanded = !l.expanded
		return true
	default:
		return false
	}
	l.clamp()
	return true
}

func (l *txList) page() int {
	if l.height > 0 {
		return l.height
	}
	return 10
}

func (l *txList) clamp() {
	if l.height <= 0 {
		l.offset = 0
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
}

func (l *txList) view() string {
	if len(l.txs) == 0 {
		return StyleMeta.Render("  No transactions found.") + "\n"
	}

	end := len(l.txs)
	if l.height > 0 {
		end = min(l.offset+l.height, len(l.txs))
	}

	tbl := NewTable(TxColumns())
	for _, tx := range l.txs[l.offset:end] {
		tbl.AddRow(TxRow(tx))
	}
	tbl.SelIdx = l.cursor - l.offset

	var sb strings.Builder
	sb.WriteString(tbl.Render())
	sb.WriteString(StyleMeta.Render(fmt.Sprintf("  %d/%d transaction(s)", l.cursor+1, len(l.txs))))
	sb.WriteString("\n")
	if l.expanded {
		if tx, ok := l.selected(); ok {
			sb.WriteString("\n")
			sb.WriteString(TxDetail(tx))
		}
	}
	return sb.String()
}

// txListModel is the bubbletea model for `plzscan txs --interactive`.
type txListModel struct {
	title string
	list  txList
}

func newTxListModel(title string, txs []explorer.TxView) txListModel {
	m := txListModel{title: title}
	m.list.set(txs)
	return m
}

func (m txListModel) Init() tea.Cmd { return nil }

func (m txListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, header, divider, footer, controls
		m.list.height = max(msg.Height-8, 3)
		m.list.clamp()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		default:
			m.list.handleKey(msg.String())
		}
	}
	return m, nil
}

func (m txListModel) View() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render(m.title))
	sb.WriteString("\n")
	sb.WriteString(m.list.view())
	sb.WriteString("\n")
	sb.WriteString(txControls())
	sb.WriteString("\n")
	return sb.String()
}

// txControls renders the bottom control bar for the tx table.
func txControls() string {
	return controls(
		[2]string{"↑↓", "navigate"},
		[2]string{"enter", "details"},
		[2]string{"q", "quit"},
	)
}

// controls renders a "[ key ] action" hint bar.
func controls(pairs ...[2]string) string {
	sep := StyleMeta.Render("   ")
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, StyleInfo.Render("[ "+p[0]+" ]")+StyleMeta.Render(" "+p[1]))
	}
	return strings.Join(parts, sep)
}

// RunTxList starts the interactive transaction list. Blocks until the user
// presses q/ESC. Uses the alt screen so the terminal is restored on exit.
func RunTxList(title string, txs []explorer.TxView) error {
	p := tea.NewProgram(newTxListModel(title, txs),
		tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
