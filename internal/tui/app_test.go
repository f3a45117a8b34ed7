package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot() RootModel {
	return NewRootModel(map[string]tea.Model{
		pageMenu:       NewMenuModel(),
		pageLoginLocal: NewMenuModel(),
	}, pageMenu, BuildInfo{Version: "1.0.0"})
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	next, cmd := newTestRoot().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	root := next.(RootModel)
	assert.True(t, root.quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	next, _ := newTestRoot().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	root := next.(RootModel)
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.0.0")

	next, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, next.(RootModel).showBuildInfo)
}

func TestRootModel_NavigateWithPayload(t *testing.T) {
	root := newTestRoot()
	target := root.pages[pageLoginLocal]

	next, cmd := root.Update(NavigateTo{Page: pageLoginLocal, Payload: RegisterSuccessNotice{Username: "asha"}})
	root = next.(RootModel)
	assert.Same(t, target, root.current)
	require.NotNil(t, cmd)
	assert.Equal(t, RegisterSuccessNotice{Username: "asha"}, cmd())

	next, _ = root.Update(NavigateTo{Page: "missing"})
	assert.Same(t, target, next.(RootModel).current)
}

func TestRootModel_SuccessfulLoginQuits(t *testing.T) {
	_, cmd := newTestRoot().Update(LoginResult{Username: "asha"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenuModel_EnterNavigates(t *testing.T) {
	menu := NewMenuModel()
	menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLoginCloud}, cmd())
}

func TestMenuModel_ShowsRegistrationNotice(t *testing.T) {
	menu := NewMenuModel()
	menu.Update(RegisterSuccessNotice{Username: "asha"})
	assert.Contains(t, menu.View(), "asha")
}
