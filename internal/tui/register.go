package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ndanilov/shelf-viewer/internal/service"
	"github.com/ndanilov/shelf-viewer/models"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldFirstName
	fieldLastName
	fieldEmail
	fieldCount
)

// RegisterModel is the Bubble Tea model for the sign-up screen. It renders
// one text input per sign-up field and dispatches an async sign-up command on
// submission. The server's validation message is shown verbatim on failure.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with all sign-up inputs. The
// username field receives focus immediately; the password field uses masked
// echo.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	placeholders := [fieldCount]string{"username", "password", "first name", "last name", "email"}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 256
		input.Width = 40
		inputs[i] = input
	}
	inputs[fieldUsername].CharLimit = 64
	inputs[fieldUsername].Focus()
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: inputs,
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. A successful sign-up already leaves the
// issued token in the adapter, so it finishes the flow with an [AuthResult]
// instead of bouncing the user back to the sign-in form.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerError(result.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return AuthResult{Username: result.username}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
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

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignUp()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	labels := [fieldCount]string{"Логин   ", "Пароль  ", "Имя     ", "Фамилия ", "Email   "}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("│ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

type registerResult struct {
	err      error
	username string
}

func (m *RegisterModel) cmdSignUp() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	signUp := models.SignUpRequest{
		Username:  strings.TrimSpace(m.inputs[fieldUsername].Value()),
		Password:  m.inputs[fieldPassword].Value(),
		FirstName: strings.TrimSpace(m.inputs[fieldFirstName].Value()),
		LastName:  strings.TrimSpace(m.inputs[fieldLastName].Value()),
		Email:     strings.TrimSpace(m.inputs[fieldEmail].Value()),
	}

	return func() tea.Msg {
		err := auth.SignUp(ctx, signUp)
		return registerResult{err: err, username: signUp.Username}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
