package ui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Mohsinsiddi/plzscan/internal/contract"
	"github.com/Mohsinsiddi/plzscan/internal/explorer"
)

// Source is what the explorer reads from. *explorer.Session implements it.
type Source interface {
	URL() string
	RecentTransactions(ctx context.Context, limit int) ([]explorer.TxView, uint64, error)
	NFTInfo(ctx context.Context) (*explorer.NFTInfo, error)
	OwnsNFT(ctx context.Context, account string) (bool, error)
	TokenInfo(ctx context.Context, account string) (*explorer.TokenInfo, error)
	Beverages(ctx context.Context) ([]string, error)
	Orders(ctx context.Context, limit int) ([]contract.Order, error)
	Order(ctx context.Context, id uint64) (*contract.Order, error)
}

// Connector opens a Source for an endpoint URL.
type Connector func(ctx context.Context, url string) (Source, error)

// ExploreOptions configures the interactive explorer.
type ExploreOptions struct {
	Connect    Connector
	URL        string   // prefilled endpoint; connects on start when set
	Recent     []string // endpoints offered with ↑/↓ on the connect form
	TxLimit    int
	OrderLimit int
	Timeout    time.Duration // per refresh or lookup; 0 means none
	OnConnect  func(url string)
	Logger     *zap.Logger
}

type tab int

const (
	tabTxs tab = iota
	tabNFT
	tabToken
	tabOrdering
)

const tabCount = int(tabOrdering) + 1

var tabNames = []string{"Transactions", "PLZNFT", "PLZToken", "Ordering"}

func (t tab) String() string { return tabNames[t] }

type connectedMsg struct {
	url string
	src Source
	err error
}

type txsMsg struct {
	gen    uint64
	txs    []explorer.TxView
	latest uint64
	err    error
}

type nftMsg struct {
	gen  uint64
	info *explorer.NFTInfo
	err  error
}

type menuMsg struct {
	gen       uint64
	beverages []string
	orders    []contract.Order
	err       error
}

type ownsMsg struct {
	gen     uint64
	account string
	owns    bool
	err     error
}

type tokenMsg struct {
	gen  uint64
	info *explorer.TokenInfo
	err  error
}

type orderMsg struct {
	gen   uint64
	order *contract.Order
	err   error
}

// ExploreModel is the bubbletea model for `plzscan explore`.
type ExploreModel struct {
	opts ExploreOptions
	log  *zap.Logger

	// connect form
	urlInput   textinput.Model
	connecting bool
	connectErr string
	recentIdx  int

	src     Source
	refresh *explorer.Generation
	lookups [tabCount]*explorer.Generation // one per tab
	pending int // refresh parts still in flight
	spin    spinner.Model

	tab        tab
	block      uint64
	hasBlock   bool
	updated    time.Time
	refreshErr string

	txs txList

	nftBalance  string
	nftErr      string
	ownerInput  textinput.Model
	owns        *bool
	ownsAccount string
	ownsErr     string

	tokenInput textinput.Model
	token      *explorer.TokenInfo
	tokenErr   string

	beverages   []string
	orders      []contract.Order
	orderingErr string
	orderInput  textinput.Model
	order       *contract.Order
	orderErr    string

	busy   [tabCount]bool // a lookup is in flight on that tab
	width  int
	height int
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 48
	in.Prompt = "› "
	in.PromptStyle = StyleBrand
	return in
}

// NewExploreModel builds the explorer in its connect screen.
func NewExploreModel(opts ExploreOptions) ExploreModel {
	if opts.TxLimit <= 0 {
		opts.TxLimit = explorer.DefaultTxLimit
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m := ExploreModel{
		opts:       opts,
		log:        log,
		urlInput:   newInput("http://127.0.0.1:8545", 512),
		recentIdx:  -1,
		refresh:    &explorer.Generation{},
		spin:       spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(StyleBrand)),
		ownerInput: newInput("Enter user address", 42),
		tokenInput: newInput("Enter user address", 42),
		orderInput: newInput("Enter order ID", 78),
		nftBalance: "0",
	}
	for i := range m.lookups {
		m.lookups[i] = &explorer.Generation{}
	}
	m.urlInput.SetValue(opts.URL)
	m.urlInput.Focus()
	m.connecting = strings.TrimSpace(opts.URL) != ""
	return m
}

// Init starts the cursor blink and, with a prefilled URL, connects.
func (m ExploreModel) Init() tea.Cmd {
	if m.connecting {
		return tea.Batch(textinput.Blink, m.spin.Tick, m.connectCmd(m.opts.URL))
	}
	return textinput.Blink
}

func (o ExploreOptions) context() (context.Context, context.CancelFunc) {
	if o.Timeout > 0 {
		return context.WithTimeout(context.Background(), o.Timeout)
	}
	return context.WithCancel(context.Background())
}

func (m ExploreModel) connectCmd(url string) tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		ctx, cancel := opts.context()
		defer cancel()
		src, err := opts.Connect(ctx, strings.TrimSpace(url))
		return connectedMsg{url: url, src: src, err: err}
	}
}

// startRefresh reloads everything the tabs show. Responses carry the
// generation they were issued under; older ones are dropped on arrival.
func (m *ExploreModel) startRefresh() tea.Cmd {
	gen := m.refresh.Next()
	m.pending = 3
	m.refreshErr = ""
	src, opts := m.src, m.opts
	m.log.Debug("refresh", zap.Uint64("gen", gen))

	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			ctx, cancel := opts.context()
			defer cancel()
			txs, latest, err := src.RecentTransactions(ctx, opts.TxLimit)
			return txsMsg{gen: gen, txs: txs, latest: latest, err: err}
		},
		func() tea.Msg {
			ctx, cancel := opts.context()
			defer cancel()
			info, err := src.NFTInfo(ctx)
			return nftMsg{gen: gen, info: info, err: err}
		},
		func() tea.Msg {
			ctx, cancel := opts.context()
			defer cancel()
			bev, err := src.Beverages(ctx)
			if err != nil {
				return menuMsg{gen: gen, err: err}
			}
			orders, err := src.Orders(ctx, opts.OrderLimit)
			return menuMsg{gen: gen, beverages: bev, orders: orders, err: err}
		},
	)
}

func (m *ExploreModel) stale(gen uint64, what string) bool {
	if m.refresh.Current(gen) {
		return false
	}
	m.log.Debug("dropping stale response", zap.String("part", what), zap.Uint64("gen", gen))
	return true
}

func (m *ExploreModel) done() {
	if m.pending > 0 {
		m.pending--
	}
	if m.pending == 0 {
		m.updated = time.Now()
	}
}

// Update handles keys and async results.
func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// header, tabs, table header, footer, controls
		m.txs.height = max(msg.Height-12, 3)
		m.txs.clamp()
		return m, nil

	case spinner.TickMsg:
		if !m.connecting && m.pending == 0 && !m.querying() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case connectedMsg:
		m.connecting = false
		if msg.err != nil {
			m.connectErr = connectMessage(msg.err)
			m.log.Debug("connect failed", zap.String("url", msg.url), zap.Error(msg.err))
			return m, nil
		}
		m.connectErr = ""
		m.src = msg.src
		m.urlInput.Blur()
		if m.opts.OnConnect != nil {
			m.opts.OnConnect(msg.url)
		}
		cmd := tea.Batch(m.startRefresh(), m.focusTab())
		return m, cmd

	case txsMsg:
		if m.stale(msg.gen, "transactions") {
			return m, nil
		}
		m.done()
		if msg.err != nil {
			m.refreshErr = "Failed to fetch transactions: " + trimErr(msg.err.Error())
			return m, nil
		}
		m.block, m.hasBlock = msg.latest, true
		m.txs.set(msg.txs)
		return m, nil

	case nftMsg:
		if m.stale(msg.gen, "nft") {
			return m, nil
		}
		m.done()
		if msg.err != nil {
			m.nftErr = "Failed to fetch contract balance: " + trimErr(msg.err.Error())
			return m, nil
		}
		m.nftErr = ""
		m.nftBalance = msg.info.BalanceETH
		return m, nil

	case menuMsg:
		if m.stale(msg.gen, "ordering") {
			return m, nil
		}
		m.done()
		m.orderingErr = ""
		if msg.beverages != nil {
			m.beverages = msg.beverages
		}
		m.orders = msg.orders
		if msg.err != nil {
			m.orderingErr = "Failed to fetch orders: " + trimErr(msg.err.Error())
		}
		return m, nil

	case ownsMsg:
		if !m.lookups[tabNFT].Current(msg.gen) {
			return m, nil
		}
		m.busy[tabNFT] = false
		if msg.err != nil {
			m.ownsErr, m.owns = fieldError(msg.err), nil
			return m, nil
		}
		owns := msg.owns
		m.ownsErr, m.owns, m.ownsAccount = "", &owns, msg.account
		return m, nil

	case tokenMsg:
		if !m.lookups[tabToken].Current(msg.gen) {
			return m, nil
		}
		m.busy[tabToken] = false
		if msg.err != nil {
			m.tokenErr, m.token = fieldError(msg.err), nil
			return m, nil
		}
		m.tokenErr, m.token = "", msg.info
		return m, nil

	case orderMsg:
		if !m.lookups[tabOrdering].Current(msg.gen) {
			return m, nil
		}
		m.busy[tabOrdering] = false
		if msg.err != nil {
			m.orderErr, m.order = fieldError(msg.err), nil
			return m, nil
		}
		m.orderErr, m.order = "", msg.order
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.src == nil {
			return m.updateConnect(msg)
		}
		return m.updateBrowse(msg)
	}

	return m.updateInputs(msg)
}

func (m ExploreModel) updateConnect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		url := strings.TrimSpace(m.urlInput.Value())
		if url == "" || m.connecting {
			return m, nil
		}
		m.connecting = true
		m.connectErr = ""
		return m, tea.Batch(m.spin.Tick, m.connectCmd(url))
	case "up", "down":
		if len(m.opts.Recent) == 0 {
			return m, nil
		}
		if msg.String() == "up" {
			m.recentIdx = (m.recentIdx + 1) % len(m.opts.Recent)
		} else {
			m.recentIdx = (m.recentIdx - 1 + len(m.opts.Recent)) % len(m.opts.Recent)
		}
		m.urlInput.SetValue(m.opts.Recent[m.recentIdx])
		m.urlInput.CursorEnd()
		return m, nil
	}
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m ExploreModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.tab = (m.tab + 1) % tab(len(tabNames))
		cmd := m.focusTab()
		return m, cmd
	case "shift+tab":
		m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
		cmd := m.focusTab()
		return m, cmd
	case "ctrl+r":
		cmd := m.startRefresh()
		return m, cmd
	case "esc":
		return m.disconnect(), textinput.Blink
	}

	if m.tab == tabTxs {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			cmd := m.startRefresh()
			return m, cmd
		case "1", "2", "3", "4":
			m.tab = tab(msg.String()[0] - '1')
			cmd := m.focusTab()
			return m, cmd
		}
		m.txs.handleKey(msg.String())
		return m, nil
	}

	if msg.String() == "enter" {
		return m.submit()
	}
	return m.updateInputs(msg)
}

// disconnect returns to the connect form. In-flight responses are
// invalidated by advancing every generation.
func (m ExploreModel) disconnect() ExploreModel {
	m.refresh.Next()
	for _, g := range m.lookups {
		g.Next()
	}
	m.src = nil
	m.pending, m.busy = 0, [tabCount]bool{}
	m.block, m.hasBlock = 0, false
	m.txs.set(nil)
	m.owns, m.token, m.order = nil, nil, nil
	m.ownsErr, m.tokenErr, m.orderErr = "", "", ""
	m.nftErr, m.orderingErr, m.refreshErr = "", "", ""
	m.beverages, m.orders, m.nftBalance = nil, nil, "0"
	m.tab = tabTxs
	m.ownerInput.Blur()
	m.tokenInput.Blur()
	m.orderInput.Blur()
	m.urlInput.Focus()
	return m
}

func (m *ExploreModel) focusTab() tea.Cmd {
	m.ownerInput.Blur()
	m.tokenInput.Blur()
	m.orderInput.Blur()
	switch m.tab {
	case tabNFT:
		return m.ownerInput.Focus()
	case tabToken:
		return m.tokenInput.Focus()
	case tabOrdering:
		return m.orderInput.Focus()
	}
	return nil
}

func (m ExploreModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.src == nil:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case m.tab == tabNFT:
		m.ownerInput, cmd = m.ownerInput.Update(msg)
	case m.tab == tabToken:
		m.tokenInput, cmd = m.tokenInput.Update(msg)
	case m.tab == tabOrdering:
		m.orderInput, cmd = m.orderInput.Update(msg)
	}
	return m, cmd
}

// submit runs the lookup of the active tab. Empty input is ignored.
func (m ExploreModel) submit() (tea.Model, tea.Cmd) {
	src, opts := m.src, m.opts
	switch m.tab {
	case tabNFT:
		account := strings.TrimSpace(m.ownerInput.Value())
		if account == "" {
			return m, nil
		}
		if err := contract.ValidateAddress(account); err != nil {
			m.ownsErr, m.owns = fieldError(err), nil
			return m, nil
		}
		gen := m.beginLookup(m.tab)
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			ctx, cancel := opts.context()
			defer cancel()
			owns, err := src.OwnsNFT(ctx, account)
			return ownsMsg{gen: gen, account: account, owns: owns, err: err}
		})

	case tabToken:
		account := strings.TrimSpace(m.tokenInput.Value())
		if account == "" {
			return m, nil
		}
		if err := contract.ValidateAddress(account); err != nil {
			m.tokenErr, m.token = fieldError(err), nil
			return m, nil
		}
		gen := m.beginLookup(m.tab)
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			ctx, cancel := opts.context()
			defer cancel()
			info, err := src.TokenInfo(ctx, account)
			return tokenMsg{gen: gen, info: info, err: err}
		})

	case tabOrdering:
		raw := strings.TrimSpace(m.orderInput.Value())
		if raw == "" {
			return m, nil
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			m.orderErr, m.order = contract.ErrOrderNotFound.Error(), nil
			return m, nil
		}
		gen := m.beginLookup(m.tab)
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			ctx, cancel := opts.context()
			defer cancel()
			order, err := src.Order(ctx, id)
			return orderMsg{gen: gen, order: order, err: err}
		})
	}
	return m, nil
}

func (m *ExploreModel) beginLookup(t tab) uint64 {
	m.busy[t] = true
	return m.lookups[t].Next()
}

func (m ExploreModel) querying() bool {
	for _, b := range m.busy {
		if b {
			return true
		}
	}
	return false
}

// connectMessage is the inline text for a failed connect.
func connectMessage(err error) string {
	if errors.Is(err, explorer.ErrNoEndpoint) {
		return err.Error()
	}
	return explorer.ErrConnect.Error()
}

// fieldError maps a query failure to its inline message.
func fieldError(err error) string {
	switch {
	case errors.Is(err, contract.ErrInvalidAddress):
		return contract.ErrInvalidAddress.Error()
	case errors.Is(err, contract.ErrOrderNotFound):
		return contract.ErrOrderNotFound.Error()
	default:
		return "Request failed: " + trimErr(err.Error())
	}
}

// View renders the active screen.
func (m ExploreModel) View() string {
	if m.src == nil {
		return m.viewConnect()
	}

	var sb strings.Builder
	sb.WriteString(m.viewHeader())
	sb.WriteString("\n")
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n\n")

	switch m.tab {
	case tabTxs:
		sb.WriteString(m.viewTxs())
	case tabNFT:
		sb.WriteString(m.viewNFT())
	case tabToken:
		sb.WriteString(m.viewToken())
	case tabOrdering:
		sb.WriteString(m.viewOrdering())
	}

	sb.WriteString("\n")
	sb.WriteString(m.viewControls())
	sb.WriteString("\n")
	return sb.String()
}

func (m ExploreModel) viewConnect() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("☕ PLZCoffee Block Explorer"))
	sb.WriteString("\n")
	sb.WriteString(StyleMeta.Render("Enter RPC URL:"))
	sb.WriteString("\n")
	sb.WriteString(m.urlInput.View())
	sb.WriteString("\n\n")

	switch {
	case m.connecting:
		sb.WriteString(StyleInfo.Render(m.spin.View() + " connecting…"))
		sb.WriteString("\n")
	case m.connectErr != "":
		sb.WriteString(Err(m.connectErr))
		sb.WriteString("\n")
	}

	if len(m.opts.Recent) > 0 {
		sb.WriteString("\n")
		sb.WriteString(StyleMeta.Render("Recent endpoints"))
		sb.WriteString("\n")
		for i, url := range m.opts.Recent {
			line := "  " + url
			if i == m.recentIdx {
				line = StyleSelected.Render(line)
			} else {
				line = StyleAddress.Render(line)
			}
			sb.WriteString(line + "\n")
		}
	}

	sb.WriteString("\n")
	pairs := [][2]string{{"enter", "connect"}}
	if len(m.opts.Recent) > 0 {
		pairs = append(pairs, [2]string{"↑↓", "recent"})
	}
	pairs = append(pairs, [2]string{"esc", "quit"})
	sb.WriteString(controls(pairs...))
	sb.WriteString("\n")
	return sb.String()
}

func (m ExploreModel) viewHeader() string {
	block := StyleMeta.Render("loading…")
	if m.hasBlock {
		block = Val(fmt.Sprintf("#%d", m.block))
	}
	line := StyleBrand.Render("☕ PLZCoffee Block Explorer") +
		StyleMeta.Render("  ·  Latest Block Number: ") + block +
		StyleMeta.Render("  ·  ") + Addr(m.src.URL())

	var status string
	switch {
	case m.pending > 0:
		status = StyleInfo.Render(m.spin.View() + " refreshing…")
	case m.refreshErr != "":
		status = Err(m.refreshErr)
	case !m.updated.IsZero():
		status = Meta("updated " + m.updated.Format("15:04:05"))
	}
	if status != "" {
		line += "\n" + status
	}
	return line
}

func (m ExploreModel) viewTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.tab {
			parts[i] = StyleTabActive.Render(label)
		} else {
			parts[i] = StyleTab.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (m ExploreModel) viewTxs() string {
	if m.pending > 0 && len(m.txs.txs) == 0 {
		return StyleMeta.Render("  Loading...") + "\n"
	}
	return m.txs.view()
}

func (m ExploreModel) lookupStatus() string {
	if m.busy[m.tab] {
		return StyleInfo.Render(m.spin.View()+" querying…") + "\n"
	}
	return ""
}

func (m ExploreModel) viewNFT() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("PLZNFT Contract Info"))
	sb.WriteString("\n")
	if m.nftErr != "" {
		sb.WriteString(Err(m.nftErr) + "\n")
	} else {
		sb.WriteString(Meta("Contract Balance: ") + Val(m.nftBalance+" ETH") + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(StyleHeader.Render("Check NFT Ownership"))
	sb.WriteString("\n")
	sb.WriteString(m.ownerInput.View() + "\n")
	sb.WriteString(m.lookupStatus())
	switch {
	case m.ownsErr != "":
		sb.WriteString(Err(m.ownsErr) + "\n")
	case m.owns != nil && *m.owns:
		sb.WriteString(Success("User owns the NFT") + Meta("  "+m.ownsAccount) + "\n")
	case m.owns != nil:
		sb.WriteString(Warn("User does not own the NFT") + Meta("  "+m.ownsAccount) + "\n")
	}
	return sb.String()
}

func (m ExploreModel) viewToken() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("PLZToken Balance Checker"))
	sb.WriteString("\n")
	sb.WriteString(m.tokenInput.View() + "\n")
	sb.WriteString(m.lookupStatus())
	if m.tokenErr != "" {
		sb.WriteString(Err(m.tokenErr) + "\n")
	}

	balance, last := "0", ""
	if m.token != nil {
		balance = m.token.BalancePLZ
		last = "never"
		if !m.token.LastRequestedAt.IsZero() {
			last = FormatTime(m.token.LastRequestedAt)
		}
	}
	sb.WriteString(Meta("User Balance: ") + Val(balance+" PLZ") + "\n")
	if last != "" {
		sb.WriteString(Meta("Last Requested At: ") + Val(last) + "\n")
	}
	return sb.String()
}

func (m ExploreModel) viewOrdering() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Ordering Contract Info"))
	sb.WriteString("\n")
	if m.orderingErr != "" {
		sb.WriteString(Err(m.orderingErr) + "\n")
	}

	sb.WriteString(StyleHeader.Render("All Valid Beverages"))
	sb.WriteString("\n")
	if len(m.beverages) == 0 {
		sb.WriteString(Meta("  (none)") + "\n")
	}
	for _, b := range m.beverages {
		sb.WriteString("  • " + b + "\n")
	}

	if len(m.orders) > 0 {
		sb.WriteString("\n")
		sb.WriteString(StyleHeader.Render("Orders"))
		sb.WriteString("\n")
		sb.WriteString(OrderTable(m.orders).Render())
	}

	sb.WriteString("\n")
	sb.WriteString(StyleHeader.Render("Get Order Details"))
	sb.WriteString("\n")
	sb.WriteString(m.orderInput.View() + "\n")
	sb.WriteString(m.lookupStatus())
	switch {
	case m.orderErr != "":
		sb.WriteString(Err(m.orderErr) + "\n")
	case m.order != nil:
		data, _ := json.MarshalIndent(m.order, "", "  ")
		sb.WriteString(string(data) + "\n")
	}
	return sb.String()
}

// OrderTable renders orders as a table.
func OrderTable(orders []contract.Order) *Table {
	tbl := NewTable([]Column{
		{Title: "ID", Width: 6},
		{Title: "CUSTOMER", Width: 42},
		{Title: "BEVERAGE", Width: 20},
		{Title: "STATUS", Width: 9},
	})
	for _, o := range orders {
		status := "pending"
		if o.Fulfilled {
			status = "fulfilled"
		}
		tbl.AddRow(Row{strconv.FormatUint(o.ID, 10), o.Customer, o.Beverage, status})
	}
	return tbl
}

func (m ExploreModel) viewControls() string {
	pairs := [][2]string{{"tab", "switch"}}
	if m.tab == tabTxs {
		pairs = append(pairs, [2]string{"↑↓", "navigate"}, [2]string{"enter", "details"}, [2]string{"r", "refresh"})
	} else {
		pairs = append(pairs, [2]string{"enter", "query"}, [2]string{"ctrl+r", "refresh"})
	}
	pairs = append(pairs, [2]string{"esc", "change RPC"}, [2]string{"ctrl+c", "quit"})
	return controls(pairs...)
}

// RunExplore starts the interactive explorer on the alt screen.
func RunExplore(opts ExploreOptions) error {
	p := tea.NewProgram(NewExploreModel(opts),
		tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
