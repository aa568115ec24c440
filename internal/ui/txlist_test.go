package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/plzscan/internal/decoder"
	"github.com/Mohsinsiddi/plzscan/internal/explorer"
)

const (
	alice    = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	tokenHex = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
)

func transferCall() decoder.DecodedCall {
	return decoder.DecodedCall{
		Contract: "PLZToken",
		Name:     "transfer",
		Selector: "0xa9059cbb",
		Keys:     []string{"to", "value"},
		Params:   map[string]any{"to": alice, "value": "1000000000000000000"},
	}
}

func sampleTxs(n int) []explorer.TxView {
	txs := make([]explorer.TxView, n)
	for i := range txs {
		txs[i] = explorer.TxView{
			Hash:     fmt.Sprintf("0x%064x", i+1),
			From:     alice,
			To:       tokenHex,
			FromName: "0x7099…79C8",
			ToName:   "PLZToken",
			ValueETH: "0",
			Block:    uint64(100 - i),
			Time:     time.Unix(1_700_000_000, 0),
			Call:     transferCall(),
		}
	}
	return txs
}

func TestTxRow(t *testing.T) {
	row := TxRow(sampleTxs(1)[0])
	require.Len(t, row, len(TxColumns()))
	assert.Equal(t, "#100", row[0])
	assert.Equal(t, "0x0000…0001", row[1])
	assert.Equal(t, "PLZToken", row[3])
	assert.Equal(t, "transfer", row[5])
}

func TestFormatTimeZero(t *testing.T) {
	assert.Equal(t, "—", FormatTime(time.Time{}))
	assert.NotEqual(t, "—", FormatTime(time.Unix(1_700_000_000, 0)))
}

func TestTxDetailShowsDecodedParams(t *testing.T) {
	out := TxDetail(sampleTxs(1)[0])

	assert.Contains(t, out, "PLZToken.transfer")
	assert.Contains(t, out, tokenHex+" (PLZToken)")
	assert.Contains(t, out, `"value": "1000000000000000000"`)
	assert.Less(t, strings.Index(out, `"to"`), strings.Index(out, `"value"`))
}

func TestTxDetailContractCreation(t *testing.T) {
	tx := sampleTxs(1)[0]
	tx.To, tx.ToName = "", "(create)"
	tx.Call = decoder.UnknownCall()

	out := TxDetail(tx)
	assert.Contains(t, out, "(contract creation)")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "{}")
}

func TestTxListNavigation(t *testing.T) {
	var l txList
	l.set(sampleTxs(5))
	l.height = 2

	assert.True(t, l.handleKey("down"))
	assert.True(t, l.handleKey("down"))
	assert.Equal(t, 2, l.cursor)
	assert.Equal(t, 1, l.offset, "window follows the cursor")

	l.handleKey("end")
	assert.Equal(t, 4, l.cursor)
	l.handleKey("down")
	assert.Equal(t, 4, l.cursor, "cursor stops at the last row")

	l.handleKey("home")
	assert.Equal(t, 0, l.cursor)
	assert.Equal(t, 0, l.offset)
	l.handleKey("up")
	assert.Equal(t, 0, l.cursor)

	assert.False(t, l.handleKey("x"))
}

func TestTxListExpand(t *testing.T) {
	var l txList
	l.set(sampleTxs(2))

	assert.NotContains(t, l.view(), "Params")
	l.handleKey("enter")
	assert.Contains(t, l.view(), "Params")

	l.set(sampleTxs(1))
	assert.False(t, l.expanded, "new data collapses the detail pane")
}

func TestTxListSetClampsCursor(t *testing.T) {
	var l txList
	l.set(sampleTxs(5))
	l.handleKey("end")

	l.set(sampleTxs(2))
	assert.Equal(t, 1, l.cursor)

	l.set(nil)
	assert.Equal(t, 0, l.cursor)
	_, ok := l.selected()
	assert.False(t, ok)
	assert.Contains(t, l.view(), "No transactions found.")
}

func TestTxListViewWindow(t *testing.T) {
	var l txList
	l.set(sampleTxs(10))
	l.height = 3

	out := l.view()
	assert.Contains(t, out, "#100")
	assert.NotContains(t, out, "#96")
	assert.Contains(t, out, "1/10 transaction(s)")
}

func TestTxListModelQuits(t *testing.T) {
	m := newTxListModel("Recent transactions", sampleTxs(3))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	m = next.(txListModel)
	assert.Equal(t, 1, m.list.cursor)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.Contains(t, m.View(), "Recent transactions")
}
