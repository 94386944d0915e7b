package responder

import (
	"fmt"
	"strings"

	"github.com/contra-ai/contra/backend/internal/analysis/intent"
)

// Responder maps a persona label and a user message to a reply.
type Responder interface {
	Generate(persona, text string) string
}

// Simulated is the deterministic keyword-driven Responder.
type Simulated struct {
	rules     []rule
	universal Template
}

var _ Responder = (*Simulated)(nil)

// New returns the simulated responder loaded with the built-in persona tables.
func New() *Simulated {
	return &Simulated{
		rules:     personaRules,
		universal: universalTemplate,
	}
}

// turn carries the analysis of a single message through the reply stages.
type turn struct {
	text     string
	lang     intent.Language
	signals  intent.Signals
	template Template
	matched  bool
}

// stage 返回回复以及是否已命中。
type stage func(t *turn) (string, bool)

// stages 按优先级依次执行，第一个给出回复的阶段生效。
var stages = []stage{
	personaReply,
	searchReply,
	universalFallback,
}

// Generate implements Responder. It never fails and never returns an empty string.
func (s *Simulated) Generate(persona, text string) string {
	t := s.analyze(persona, text)
	for _, next := range stages {
		if reply, ok := next(t); ok {
			return reply
		}
	}
	return qaReply(t)
}

// Match reports which persona tag a label resolves to, or UniversalPersona.
func (s *Simulated) Match(persona string) string {
	if r, ok := s.match(persona); ok {
		return r.Tag
	}
	return UniversalPersona
}

func (s *Simulated) analyze(persona, text string) *turn {
	lowered := strings.ToLower(text)
	lang := intent.DetectLanguage(lowered)

	t := &turn{
		text:     lowered,
		lang:     lang,
		signals:  intent.Classify(lowered, lang),
		template: s.universal,
	}
	if r, ok := s.match(persona); ok {
		t.template = r.Template
		t.matched = true
	}
	return t
}

func (s *Simulated) match(persona string) (rule, bool) {
	for _, r := range s.rules {
		if strings.Contains(persona, r.Tag) {
			return r, true
		}
	}
	return rule{}, false
}

func personaReply(t *turn) (string, bool) {
	if !t.matched {
		return "", false
	}

	if loc, ok := t.template.Localized[t.lang]; ok && loc.answersIntents() {
		switch {
		case t.signals.Price && loc.Price != "":
			return loc.Price, true
		case t.signals.Bad && loc.Bad != "":
			return loc.Bad, true
		case loc.Default != "":
			return loc.Default, true
		}
		return "", false
	}

	switch {
	case t.signals.Price && t.template.Price != "":
		return t.template.Price, true
	case t.signals.Bad && t.template.Bad != "":
		return t.template.Bad, true
	}
	return "", false
}

func searchReply(t *turn) (string, bool) {
	if !t.signals.Search {
		return "", false
	}
	query := intent.StripSearchTriggers(t.text)
	return fmt.Sprintf(localizedOrEnglish(searchReplies, t.lang), query), true
}

func universalFallback(t *turn) (string, bool) {
	switch {
	case t.signals.Price:
		return localizedOrEnglish(universalPriceReplies, t.lang), true
	case t.signals.Bad:
		return localizedOrEnglish(universalBadReplies, t.lang), true
	}
	return "", false
}

func qaReply(t *turn) string {
	if loc, ok := t.template.Localized[t.lang]; ok && loc.QA != "" {
		return fmt.Sprintf(loc.QA, t.text)
	}
	return fmt.Sprintf("%s regarding '%s' - valid point. %s", t.template.Prefix, t.text, t.template.Suffix)
}
