package screen

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/component"
	"github.com/rovshanmuradov/coinfolio/internal/ui/router"
)

// LoginScreen is a sign-in form. There is no account backend: signing in
// only navigates to the market.
type LoginScreen struct {
	base
	form   *component.Form
	logger *zap.Logger
}

// NewLoginScreen creates the sign-in screen
func NewLoginScreen(app *ui.AppContext) *LoginScreen {
	form := component.NewForm(app.Theme.Styles()).
		AddField("email", component.FieldTypeText, "Email Address", false, "you@example.com").
		AddField("password", component.FieldTypePassword, "Password", false, "")
	form.SetWidth(44)

	return &LoginScreen{
		base:   newBase(app, ui.RouteLogin),
		form:   form,
		logger: app.Named("login"),
	}
}

// Init initializes the screen
func (m *LoginScreen) Init() tea.Cmd {
	return nil
}

// CapturesInput is always true: letters go to the form, esc is handled here.
func (m *LoginScreen) CapturesInput() bool {
	return true
}

// Update handles screen updates
func (m *LoginScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, ui.Back()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	if m.form.Submitted() {
		m.logger.Info("Sign in", zap.Bool("email_set", strings.TrimSpace(m.form.GetValue("email")) != ""))
		return m, ui.Navigate(ui.At(ui.RouteHome))
	}
	return m, cmd
}

// View renders the screen
func (m *LoginScreen) View() string {
	s := m.styles()
	m.form.SetStyles(s)

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Welcome back to CryptoLite"),
		s.Muted.Render("Sign in to manage your portfolio"),
		"",
		m.form.View(),
		"",
		s.Info.Render("Forgot password?"),
		"",
		s.ButtonActive.Render("Sign in"),
		"",
		s.Muted.Render("Not a member? ")+s.Info.Render("Start your free trial"),
	)
	return m.frame(m.center(s.Panel.Render(body)))
}
