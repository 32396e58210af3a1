// Package practice hosts the drill screen: it walks the session queue,
// renders one exercise per card, and records answers.
package practice

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/exercise"
	engine "github.com/mlutz/kartei/internal/practice"
	"github.com/mlutz/kartei/internal/router"
	"github.com/mlutz/kartei/internal/screen"
	"github.com/mlutz/kartei/internal/screens/summary"
	"github.com/mlutz/kartei/internal/store"
	"github.com/mlutz/kartei/internal/ui/components"
	"github.com/mlutz/kartei/internal/ui/layout"
)

// PracticeScreen drives one practice session.
type PracticeScreen struct {
	st        *store.Store
	log       logrus.FieldLogger
	sessionID string
	language  string

	session *engine.Session
	loading bool
	loadErr error

	// per-item widgets; which one is live depends on the exercise type
	choice   components.MultiChoice
	input    components.TextInput
	revealed bool

	// answer bookkeeping
	expected  string // what a typed answer is compared against
	verdict   bool   // tentative correctness, overridable before confirm
	itemStart time.Time
	saveErr   error

	correctSoFar int // mirrors the session counter for the end event
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscHandler = (*PracticeScreen)(nil)

// New creates the practice screen. The session is built asynchronously
// in Init so the UI stays responsive while the pool loads.
func New(st *store.Store, log logrus.FieldLogger) *PracticeScreen {
	return &PracticeScreen{
		st:        st,
		log:       log,
		sessionID: uuid.NewString(),
		loading:   true,
	}
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.loadSession
}

// loadSession reads settings and the card pool, then builds the queue.
func (p *PracticeScreen) loadSession() tea.Msg {
	ctx := context.Background()

	settings, err := p.st.Settings().Load(ctx)
	if err != nil {
		return sessionReadyMsg{Err: err}
	}

	pool, err := p.st.Cards().List(ctx, store.CardFilter{Language: settings.ActiveLanguage})
	if err != nil {
		return sessionReadyMsg{Err: err}
	}

	sessionID := p.sessionID
	events := p.st.Events()
	startedAt := time.Now()

	sess := engine.NewSession(engine.Config{
		Saver: p.st.Cards(),
		OnComplete: func(totalReviewed int) error {
			return events.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID:      sessionID,
				Action:         "end",
				Language:       settings.ActiveLanguage,
				TotalReviewed:  totalReviewed,
				CorrectAnswers: p.correctSoFar,
				DurationSecs:   int(time.Since(startedAt).Seconds()),
			})
		},
		Log: p.log,
	})
	sess.Start(pool, settings.Preferences, len(pool))

	due := 0
	now := time.Now()
	for _, c := range pool {
		if len(c.DueExerciseTypes(now)) > 0 {
			due++
		}
	}

	return sessionReadyMsg{
		Session:  sess,
		Language: settings.ActiveLanguage,
		Due:      due,
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		p.loading = false
		if msg.Err != nil {
			p.loadErr = msg.Err
			return p, nil
		}
		p.session = msg.Session
		p.language = msg.Language

		if p.session.Status() != engine.StatusActive {
			// Nothing to practice; the view explains and Esc goes home.
			return p, nil
		}

		if err := p.st.Events().AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: p.sessionID,
			Action:    "start",
			Language:  p.language,
			QueueLength: func() int {
				_, total := p.session.Progress()
				return total
			}(),
		}); err != nil {
			p.log.WithError(err).Warn("failed to log session start")
		}

		p.setupItem()
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Forward everything else (blink ticks etc.) to the live input.
	if p.session != nil && !p.typedAnswerSubmitted() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.session == nil || p.session.Status() != engine.StatusActive {
		return p, nil
	}

	item, ok := p.session.Current()
	if !ok {
		return p, nil
	}

	if _, checked := p.session.Checked(); checked {
		return p.handleFeedbackKey(msg)
	}

	// Skip is only allowed before the answer is checked.
	if msg.String() == "ctrl+s" {
		return p, p.skipItem(item)
	}

	switch answerMode(item.Type) {
	case modeChoice:
		var cmd tea.Cmd
		p.choice, cmd = p.choice.Update(msg)
		if p.choice.Submitted {
			p.checkAnswer(p.choice.IsCorrect())
		}
		return p, cmd

	case modeTyped:
		if msg.String() == "enter" {
			answer := strings.TrimSpace(p.input.Value())
			if answer == "" {
				return p, nil
			}
			correct := equalAnswer(answer, p.expected)
			p.input.Submit(correct)
			p.checkAnswer(correct)
			return p, nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd

	case modeReveal:
		switch msg.String() {
		case " ", "space", "enter":
			p.revealed = true
		case "y":
			if p.revealed {
				p.checkAnswer(true)
			}
		case "n":
			if p.revealed {
				p.checkAnswer(false)
			}
		}
		return p, nil
	}

	return p, nil
}

// handleFeedbackKey runs after CheckAnswer, before confirmation.
func (p *PracticeScreen) handleFeedbackKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "o":
		// The learner disagrees with the grading (typos, synonyms).
		p.verdict = !p.verdict
		p.session.CheckAnswer(p.verdict)
		return p, nil

	case "enter":
		item, _ := p.session.Current()
		if p.verdict {
			p.correctSoFar++
		}
		if err := p.session.ConfirmAndAdvance(context.Background(), p.verdict); err != nil {
			if p.verdict {
				p.correctSoFar--
			}
			p.saveErr = err
			return p, nil
		}
		p.saveErr = nil
		p.appendReview(item, p.verdict, false)
		return p.afterAdvance()
	}
	return p, nil
}

func (p *PracticeScreen) skipItem(item engine.Item) tea.Cmd {
	if err := p.session.Skip(context.Background()); err != nil {
		p.saveErr = err
		return nil
	}
	p.saveErr = nil
	p.appendReview(item, false, true)
	_, cmd := p.afterAdvance()
	return cmd
}

// afterAdvance sets up the next item or hands over to the summary.
func (p *PracticeScreen) afterAdvance() (screen.Screen, tea.Cmd) {
	if p.session.Status() == engine.StatusComplete {
		correct, incorrect := p.session.Results()
		sum := summary.New(summary.Results{
			Correct:   correct,
			Incorrect: incorrect,
			Duration:  time.Since(p.session.StartedAt()),
			Language:  p.language,
		})
		return p, func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
	}
	p.setupItem()
	return p, nil
}

// setupItem prepares the widgets for the current queue item.
func (p *PracticeScreen) setupItem() {
	item, ok := p.session.Current()
	if !ok {
		return
	}

	p.revealed = false
	p.saveErr = nil
	p.itemStart = time.Now()

	switch item.Type {
	case exercise.MultipleChoiceText, exercise.MultipleChoiceIcon:
		p.choice = components.NewMultiChoice(choicePrompt(item), p.session.Options(), item.Card.Back)
	case exercise.ArticleSelection:
		p.choice = components.NewMultiChoice(
			"Which article? — "+item.Card.Headword(),
			[]string{"der", "die", "das"},
			item.Card.Article(),
		)
	case exercise.ReverseTranslation:
		p.expected = item.Card.Front
		p.input = components.NewTextInput("type the word...", 64)
	case exercise.ConjugationPractice:
		label, expected := conjugationTarget(item.Card)
		p.expected = expected
		p.input = components.NewTextInput(label, 64)
	case exercise.SentenceBuilding:
		_, expected := sentenceCloze(item.Card)
		p.expected = expected
		p.input = components.NewTextInput("fill in the blank...", 64)
	}
}

func (p *PracticeScreen) checkAnswer(correct bool) {
	p.verdict = correct
	if err := p.session.CheckAnswer(correct); err != nil {
		p.log.WithError(err).Warn("check answer rejected")
	}
}

func (p *PracticeScreen) appendReview(item engine.Item, correct, skipped bool) {
	err := p.st.Events().AppendReviewEvent(context.Background(), store.ReviewEventData{
		SessionID:    p.sessionID,
		CardID:       item.Card.ID,
		ExerciseType: string(item.Type),
		Correct:      correct,
		Skipped:      skipped,
		TimeMs:       int(time.Since(p.itemStart).Milliseconds()),
	})
	if err != nil {
		p.log.WithError(err).Warn("failed to log review event")
	}
}

// typedAnswerSubmitted reports whether the current item's typed input is
// frozen (answer checked).
func (p *PracticeScreen) typedAnswerSubmitted() bool {
	_, checked := p.session.Checked()
	return checked
}

// HandleEsc ends the session before leaving the screen. End never fires
// OnComplete, so an abandoned run logs its own end event.
func (p *PracticeScreen) HandleEsc() tea.Cmd {
	if p.session != nil && p.session.Status() == engine.StatusActive {
		correct, incorrect := p.session.Results()
		p.session.End()
		if err := p.st.Events().AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:      p.sessionID,
			Action:         "end",
			Language:       p.language,
			TotalReviewed:  correct + incorrect,
			CorrectAnswers: correct,
			DurationSecs:   int(time.Since(p.session.StartedAt()).Seconds()),
		}); err != nil {
			p.log.WithError(err).Warn("failed to log session end")
		}
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.session == nil || p.session.Status() != engine.StatusActive {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if _, checked := p.session.Checked(); checked {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "O", Description: "Override grading"},
			{Key: "Esc", Description: "End session"},
		}
	}
	item, _ := p.session.Current()
	hints := []layout.KeyHint{}
	switch answerMode(item.Type) {
	case modeChoice:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Select"},
			layout.KeyHint{Key: "Enter", Description: "Answer"})
	case modeTyped:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Answer"})
	case modeReveal:
		if p.revealed {
			hints = append(hints,
				layout.KeyHint{Key: "Y", Description: "Knew it"},
				layout.KeyHint{Key: "N", Description: "Didn't"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "Space", Description: "Reveal"})
		}
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Skip"},
		layout.KeyHint{Key: "Esc", Description: "End session"})
}

// equalAnswer compares a typed answer leniently: case-insensitive and
// article-optional, so "Haus" passes for "das Haus".
func equalAnswer(answer, expected string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	e := strings.ToLower(strings.TrimSpace(expected))
	if a == e {
		return true
	}
	for _, art := range []string{"der ", "die ", "das "} {
		if strings.TrimPrefix(e, art) == a {
			return true
		}
	}
	return false
}

// conjugationTarget picks the grammar form to drill. It covers every
// variant that makes a card eligible for conjugation practice: verbs
// prefer the third person present, nouns drill the plural or the
// article, adjectives the comparative or superlative.
func conjugationTarget(c card.Card) (label, expected string) {
	switch g := c.Grammar.(type) {
	case card.VerbGrammar:
		switch {
		case g.PresentThird != "":
			return "er/sie/es ...", g.PresentThird
		case g.PastSimple != "":
			return "simple past...", g.PastSimple
		case g.PastParticiple != "":
			return "past participle...", g.PastParticiple
		default:
			return "du ...", g.PresentSecond
		}
	case card.NounGrammar:
		if g.Plural != "" {
			return "plural form...", g.Plural
		}
		return "der, die or das?", g.Gender
	case card.AdjectiveGrammar:
		if g.Comparative != "" {
			return "comparative...", g.Comparative
		}
		return "superlative...", g.Superlative
	}
	return "", ""
}

// sentenceCloze blanks the headword out of the card's first example.
// When the sentence doesn't contain it (inflection), the whole word is
// asked under the plain sentence instead. Matching is case-folded and
// works on runes so offsets never depend on case-mapped byte lengths.
func sentenceCloze(c card.Card) (sentence, expected string) {
	if len(c.Examples) == 0 {
		return "", c.Headword()
	}
	example := c.Examples[0]
	head := c.Headword()

	exRunes := []rune(example)
	n := len([]rune(head))
	for i := 0; i+n <= len(exRunes); i++ {
		candidate := string(exRunes[i : i+n])
		if !strings.EqualFold(candidate, head) {
			continue
		}
		return string(exRunes[:i]) + strings.Repeat("_", n) + string(exRunes[i+n:]),
			candidate
	}
	return example, head
}

type mode int

const (
	modeChoice mode = iota
	modeTyped
	modeReveal
)

// answerMode groups exercise types by how they are answered on screen.
func answerMode(t exercise.Type) mode {
	switch t {
	case exercise.MultipleChoiceText, exercise.MultipleChoiceIcon, exercise.ArticleSelection:
		return modeChoice
	case exercise.ReverseTranslation, exercise.ConjugationPractice, exercise.SentenceBuilding:
		return modeTyped
	default:
		return modeReveal
	}
}

// choicePrompt is the question line for the multiple-choice types.
func choicePrompt(item engine.Item) string {
	if item.Type == exercise.MultipleChoiceIcon && item.Card.IconRef != "" {
		return "What does this mean?  " + item.Card.IconRef
	}
	return "What does \"" + item.Card.Front + "\" mean?"
}
