package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	regLogin = iota
	regPassword
	regRepeat
	regCompany
	regState
)

var registerLabels = []string{"Username", "Password", "Repeat", "Company", "GST state"}

// RegisterModel creates an offline account or a cloud account. A local
// account returns to the menu with a [RegisterSuccessNotice]; a cloud sign
// up is signed in right away and ends the flow with a [LoginResult].
type RegisterModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	cloud bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

type registerResult struct {
	err      error
	username string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService, cloud bool) *RegisterModel {
	fields := make([]textinput.Model, len(registerLabels))
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Width = 40
		fields[i].Placeholder = strings.ToLower(registerLabels[i])
	}
	if cloud {
		fields[regLogin].Placeholder = "email"
	}
	fields[regLogin].CharLimit = 254
	for _, i := range []int{regPassword, regRepeat} {
		fields[i].EchoMode = textinput.EchoPassword
		fields[i].EchoCharacter = '*'
	}
	fields[regState].Placeholder = "e.g. Karnataka"
	fields[regLogin].Focus()

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		cloud:  cloud,
		inputs: fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.reset()
		username := result.username
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: username}}
		}
	}
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			if errMsg := m.check(); errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) check() string {
	if strings.TrimSpace(m.inputs[regLogin].Value()) == "" || m.inputs[regPassword].Value() == "" {
		return "Login and password are required"
	}
	if m.inputs[regPassword].Value() != m.inputs[regRepeat].Value() {
		return "Passwords do not match"
	}
	return ""
}

func (m *RegisterModel) cmdRegister() tea.Cmd {
	ctx, auth, cloud := m.ctx, m.auth, m.cloud
	login := strings.TrimSpace(m.inputs[regLogin].Value())
	password := m.inputs[regPassword].Value()
	company := strings.TrimSpace(m.inputs[regCompany].Value())
	state := strings.TrimSpace(m.inputs[regState].Value())

	if cloud {
		return func() tea.Msg {
			if err := auth.SwitchToCloudMode(ctx); err != nil {
				return LoginResult{Err: err, Username: login, Cloud: true}
			}
			_, err := auth.SignUp(ctx, models.User{
				Email:       login,
				Password:    password,
				CompanyName: company,
				GSTState:    state,
			})
			return LoginResult{Err: err, Username: login, Cloud: true}
		}
	}

	return func() tea.Msg {
		_, err := auth.RegisterLocal(ctx, models.Credentials{
			Username:    login,
			Password:    password,
			CompanyName: company,
			GSTState:    state,
		})
		return registerResult{err: err, username: login}
	}
}

func (m *RegisterModel) View() string {
	title := "NEW OFFLINE ACCOUNT"
	if m.cloud {
		title = "NEW CLOUD ACCOUNT"
	}

	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	for i, input := range m.inputs {
		label := registerLabels[i]
		if i == regLogin && m.cloud {
			label = "Email"
		}
		b.WriteString(padRight(label, 11))
		b.WriteString("│ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: confirm")
}

func (m *RegisterModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.submitting = false
	m.errMsg = ""
	m.setFocus(regLogin)
}
