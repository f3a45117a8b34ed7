// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
)

// LoginModel is the sign-in screen. In cloud mode the first field is the
// email of the remote account, otherwise the offline username. On success a
// [LoginResult] is produced and handled by [RootModel].
type LoginModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	cloud bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService, cloud bool) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	if cloud {
		loginInput.Placeholder = "email"
	}
	loginInput.CharLimit = 254
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		cloud:  cloud,
		inputs: []textinput.Model{loginInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			login := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if login == "" || pass == "" {
				m.errMsg = "Login and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(login, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	field := "Username"
	title := "SIGN IN (OFFLINE)"
	if m.cloud {
		field, title = "Email", "SIGN IN (CLOUD)"
	}

	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString(padRight(field, 10))
	b.WriteString("│ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: confirm")
}

// cmdLogin switches the client into the mode of this screen before signing
// in, so the session lands where the sync engine will look for it.
func (m *LoginModel) cmdLogin(login, pass string) tea.Cmd {
	ctx, auth, cloud := m.ctx, m.auth, m.cloud

	return func() tea.Msg {
		if cloud {
			if err := auth.SwitchToCloudMode(ctx); err != nil {
				return LoginResult{Err: err, Username: login, Cloud: true}
			}
			_, err := auth.SignIn(ctx, login, pass)
			return LoginResult{Err: err, Username: login, Cloud: true}
		}

		if err := auth.SwitchToLocalMode(ctx); err != nil {
			return LoginResult{Err: err, Username: login}
		}
		_, err := auth.LoginLocal(ctx, login, pass)
		return LoginResult{Err: err, Username: login}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
