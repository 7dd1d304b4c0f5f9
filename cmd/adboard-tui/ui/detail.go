package ui

import (
	"fmt"
	"strings"

	"adboard/app/dto"

	tea "github.com/charmbracelet/bubbletea"
)

type adLoadedMsg struct{ ad *dto.AdvertisementResponse }

// BackToBoardMsg signals transition back to the board table.
type BackToBoardMsg struct{}

type DetailModel struct {
	Client *Client
	ID     uint
	Ad     *dto.AdvertisementResponse
	Err    error
}

func NewDetailModel(c *Client, id uint) DetailModel {
	return DetailModel{Client: c, ID: id}
}

func (m DetailModel) Init() tea.Cmd {
	return func() tea.Msg {
		ad, err := m.Client.GetAdvertisement(m.ID)
		if err != nil {
			return errMsg(err)
		}
		return adLoadedMsg{ad: ad}
	}
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return BackToBoardMsg{} }
		case "q":
			return m, tea.Quit
		}
	case adLoadedMsg:
		m.Ad = msg.ad
		m.Err = nil
	case errMsg:
		m.Err = msg
	}
	return m, nil
}

func (m DetailModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Advertisement #%d", m.ID)) + "\n\n")
	if m.Ad != nil {
		b.WriteString(focusedStyle.Render(m.Ad.Title) + "\n\n")
		b.WriteString(m.Ad.Description + "\n\n")
		b.WriteString(fmt.Sprintf("Owner:   %s\n", m.Ad.Owner))
		if m.Ad.UserID != nil {
			b.WriteString(fmt.Sprintf("User:    %d\n", *m.Ad.UserID))
		}
		b.WriteString(fmt.Sprintf("Created: %s\n", m.Ad.CreationTime))
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Esc to go back, 'q' to quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
