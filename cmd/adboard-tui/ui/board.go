package ui

import (
	"fmt"
	"strconv"
	"strings"

	"adboard/app/dto"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type adsLoadedMsg struct{ ads []dto.AdvertisementResponse }

type adDeletedMsg struct{ id uint }

type BoardModel struct {
	Client *Client
	Table  table.Model
	Ads    []dto.AdvertisementResponse
	Err    error
}

func NewBoardModel(c *Client, width, height int) BoardModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 30},
		{Title: "Owner", Width: 16},
		{Title: "Created", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return BoardModel{Client: c, Table: t}
}

func (m BoardModel) Init() tea.Cmd {
	return m.refreshCmd
}

func (m BoardModel) refreshCmd() tea.Msg {
	ads, err := m.Client.ListAdvertisements()
	if err != nil {
		return errMsg(err)
	}
	return adsLoadedMsg{ads: ads}
}

func (m BoardModel) selectedID() (uint, bool) {
	row := m.Table.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.ParseUint(row[0], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd
		case "d":
			if id, ok := m.selectedID(); ok {
				return m, func() tea.Msg {
					if err := m.Client.DeleteAdvertisement(id); err != nil {
						return errMsg(err)
					}
					return adDeletedMsg{id: id}
				}
			}
		case "enter":
			if id, ok := m.selectedID(); ok {
				return m, func() tea.Msg {
					return AdSelectedMsg{ID: id}
				}
			}
		case "q":
			return m, tea.Quit
		}

	case adsLoadedMsg:
		m.Err = nil
		m.Ads = msg.ads
		rows := make([]table.Row, 0, len(msg.ads))
		for _, ad := range msg.ads {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", ad.ID),
				ad.Title,
				ad.Owner,
				ad.CreationTime,
			})
		}
		m.Table.SetRows(rows)

	case adDeletedMsg:
		return m, m.refreshCmd

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m BoardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Advertisements") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'r' refresh, 'd' delete, Enter detail, 'q' quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}

// AdSelectedMsg is emitted when a row is opened from the board.
type AdSelectedMsg struct{ ID uint }
