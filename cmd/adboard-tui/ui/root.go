package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateBoard
	stateDetail
)

type RootModel struct {
	State    state
	Client   *Client
	Login    LoginModel
	Board    BoardModel
	Detail   DetailModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(baseURL string) RootModel {
	c := NewClient(baseURL)
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Height > 10 {
			m.Board.Table.SetHeight(msg.Height - 10)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case loginDoneMsg:
		m.State = stateBoard
		m.Board = NewBoardModel(m.Client, m.width, m.height)
		return m, m.Board.Init()

	case AdSelectedMsg:
		m.State = stateDetail
		m.Detail = NewDetailModel(m.Client, msg.ID)
		return m, m.Detail.Init()

	case BackToBoardMsg:
		m.State = stateBoard
		return m, m.Board.Init()
	}

	switch m.State {
	case stateLogin:
		if e, ok := msg.(errMsg); ok {
			m.Login.Err = e
		}
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)
	case stateBoard:
		newBoard, cmd := m.Board.Update(msg)
		m.Board = newBoard
		cmds = append(cmds, cmd)
	case stateDetail:
		newDetail, cmd := m.Detail.Update(msg)
		m.Detail = newDetail
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateBoard:
		return m.Board.View()
	case stateDetail:
		return m.Detail.View()
	}
	return "Unknown state"
}
