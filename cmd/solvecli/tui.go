package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mathsolve/backend/cooldown"
)

type state int

const (
	stateLoginUsername state = iota
	stateLoginPassword
	stateFetching
	stateProblem
	stateCooldown
	stateNoProblems
	stateError
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498db"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

type model struct {
	state  state
	client *apiClient
	guard  *cooldown.Guard

	usernameInput textinput.Model
	passwordInput textinput.Model
	answerInput   textinput.Model

	username string
	points   int

	current  *recommendedPayload
	lastNote string
	err      error
}

type loginResultMsg struct {
	payload *loginPayload
	err     error
}

type problemMsg struct {
	payload *recommendedPayload
	err     error
}

type answerResultMsg struct {
	payload *checkAnswerPayload
	err     error
}

type tickMsg time.Time

func initialModel(client *apiClient, guard *cooldown.Guard) model {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	answer := textinput.New()
	answer.Placeholder = "answer"

	return model{
		state:         stateLoginUsername,
		client:        client,
		guard:         guard,
		usernameInput: username,
		passwordInput: password,
		answerInput:   answer,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) loginCmd() tea.Cmd {
	username := m.usernameInput.Value()
	password := m.passwordInput.Value()
	return func() tea.Msg {
		payload, err := m.client.login(username, password)
		return loginResultMsg{payload: payload, err: err}
	}
}

func (m model) fetchProblemCmd() tea.Cmd {
	return func() tea.Msg {
		payload, err := m.client.recommend()
		return problemMsg{payload: payload, err: err}
	}
}

func (m model) submitAnswerCmd() tea.Cmd {
	problemID := m.current.Problem.ID
	answer := m.answerInput.Value()
	return func() tea.Msg {
		payload, err := m.client.checkAnswer(problemID, answer)
		return answerResultMsg{payload: payload, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateLoginUsername:
		return m.updateLoginUsername(msg)
	case stateLoginPassword:
		return m.updateLoginPassword(msg)
	case stateFetching:
		return m.updateFetching(msg)
	case stateProblem:
		return m.updateProblem(msg)
	case stateCooldown:
		return m.updateCooldown(msg)
	case stateNoProblems, stateError:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m model) updateLoginUsername(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if m.usernameInput.Value() == "" {
			return m, nil
		}
		m.state = stateLoginPassword
		m.usernameInput.Blur()
		return m, m.passwordInput.Focus()
	}
	var cmd tea.Cmd
	m.usernameInput, cmd = m.usernameInput.Update(msg)
	return m, cmd
}

func (m model) updateLoginPassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		m.state = stateFetching
		m.passwordInput.Blur()
		return m, m.loginCmd()
	}
	var cmd tea.Cmd
	m.passwordInput, cmd = m.passwordInput.Update(msg)
	return m, cmd
}

func (m model) updateFetching(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err != nil {
			// wrong credentials go back to the login form
			if _, ok := msg.err.(*apiError); ok {
				m.state = stateLoginUsername
				m.lastNote = wrongStyle.Render(msg.err.Error())
				m.usernameInput.SetValue("")
				m.passwordInput.SetValue("")
				return m, m.usernameInput.Focus()
			}
			m.state = stateError
			m.err = msg.err
			return m, nil
		}
		m.username = msg.payload.User.Username
		m.points = msg.payload.User.Points
		m.lastNote = ""
		return m, m.fetchProblemCmd()

	case problemMsg:
		if msg.err != nil {
			m.state = stateError
			m.err = msg.err
			return m, nil
		}
		if msg.payload == nil {
			m.state = stateNoProblems
			return m, nil
		}
		m.current = msg.payload
		m.answerInput.SetValue("")

		if left, active := m.guard.Remaining(m.current.Problem.ID); active {
			m.state = stateCooldown
			m.lastNote = fmt.Sprintf("cooldown active: %s left", cooldown.FormatRemaining(left))
			return m, tick()
		}

		m.state = stateProblem
		return m, m.answerInput.Focus()

	case answerResultMsg:
		if msg.err != nil {
			if apiErr, ok := msg.err.(*apiError); ok {
				m.lastNote = wrongStyle.Render(apiErr.Message)
				return m, m.fetchProblemCmd()
			}
			m.state = stateError
			m.err = msg.err
			return m, nil
		}
		if msg.payload.Correct {
			if msg.payload.PointsEarned != nil {
				m.points += *msg.payload.PointsEarned
			}
			_ = m.guard.Clear(m.current.Problem.ID)
			m.lastNote = correctStyle.Render(msg.payload.Message)
			return m, m.fetchProblemCmd()
		}

		// incorrect answer starts the local retry window
		_ = m.guard.Fail(m.current.Problem.ID)
		m.state = stateCooldown
		m.lastNote = wrongStyle.Render(msg.payload.Message)
		return m, tick()
	}
	return m, nil
}

func (m model) updateProblem(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.answerInput.Value() == "" {
				return m, nil
			}
			m.state = stateFetching
			m.answerInput.Blur()
			return m, m.submitAnswerCmd()
		case "ctrl+s":
			// skip to another problem
			m.state = stateFetching
			m.answerInput.Blur()
			return m, m.fetchProblemCmd()
		}
	}
	var cmd tea.Cmd
	m.answerInput, cmd = m.answerInput.Update(msg)
	return m, cmd
}

func (m model) updateCooldown(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if _, active := m.guard.Remaining(m.current.Problem.ID); !active {
			m.state = stateProblem
			return m, m.answerInput.Focus()
		}
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			// skip the cooling problem, fetch another
			m.state = stateFetching
			return m, m.fetchProblemCmd()
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateLoginUsername, stateLoginPassword:
		s := titleStyle.Render("mathsolve") + "\n\n"
		if m.lastNote != "" {
			s += m.lastNote + "\n\n"
		}
		s += "Username: " + m.usernameInput.View() + "\n"
		if m.state == stateLoginPassword {
			s += "Password: " + m.passwordInput.View() + "\n"
		}
		return s

	case stateFetching:
		return "Loading...\n"

	case stateProblem:
		return m.problemView() +
			"\nAnswer: " + m.answerInput.View() + "\n\n" +
			faintStyle.Render("enter to submit, ctrl+s to skip, ctrl+c to quit") + "\n"

	case stateCooldown:
		left, _ := m.guard.Remaining(m.current.Problem.ID)
		s := m.problemView()
		if m.lastNote != "" {
			s += "\n" + m.lastNote + "\n"
		}
		s += fmt.Sprintf("\nNext attempt in %s\n\n", cooldown.FormatRemaining(left))
		s += faintStyle.Render("s to skip to another problem, q to quit") + "\n"
		return s

	case stateNoProblems:
		return "No unsolved problems left. Come back later!\n\n" +
			faintStyle.Render("q to quit") + "\n"

	case stateError:
		return wrongStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" +
			faintStyle.Render("q to quit") + "\n"
	}
	return ""
}

func (m model) problemView() string {
	p := m.current.Problem
	var b strings.Builder

	header := fmt.Sprintf("Problem #%d (%s) by %s", p.ID, p.Difficulty, m.current.Author.Username)
	b.WriteString(titleStyle.Render(header) + "\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("%s, %d points, solved %d times",
		m.username, m.points, p.SolveCount)) + "\n\n")
	b.WriteString(p.Text + "\n")

	if len(p.Options) > 0 {
		b.WriteString("\n")
		for i, opt := range p.Options {
			b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, opt))
		}
		b.WriteString(faintStyle.Render("\ntype the option text exactly") + "\n")
	}
	return b.String()
}
