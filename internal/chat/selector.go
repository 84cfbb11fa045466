// Package chat implements the canned wellness companion. Replies come from
// a keyword lookup with randomized fallbacks; there is no model, no state,
// and no failure mode. The artificial typing delay before a reply is the
// only asynchrony in the whole application.
package chat

import (
	"fmt"
	"strings"
	"time"
)

// Rand supplies the random choice between fallback replies and the reply
// delay jitter.
type Rand interface {
	Intn(n int) int
}

// Selector maps free-text input to a reply string.
type Selector struct {
	rand      Rand
	baseDelay time.Duration
}

// NewSelector returns a Selector using the given random source. baseDelay <= 0
// means one second, the pause users have always seen.
func NewSelector(r Rand, baseDelay time.Duration) *Selector {
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	return &Selector{rand: r, baseDelay: baseDelay}
}

// Greeting returns the opening assistant message, personalized with the
// user's name.
func Greeting(name string) string {
	return fmt.Sprintf("Hello %s! I'm your AI mental wellness companion. I'm here to provide support, guidance, and a listening ear whenever you need it. How are you feeling today?", name)
}

type keywordRule struct {
	keywords []string
	reply    string
}

// Checked in order; the first matching rule wins.
var keywordRules = []keywordRule{
	{
		keywords: []string{"sad", "depressed", "down"},
		reply:    "I'm sorry you're feeling sad. It's okay to feel this way - sadness is a natural human emotion. Would you like to talk about what's contributing to these feelings? Sometimes sharing can help lighten the emotional load.",
	},
	{
		keywords: []string{"anxious", "anxiety", "worried"},
		reply:    "Anxiety can feel overwhelming, but you're not alone in this. Try taking a few deep breaths with me. What specific thoughts or situations are making you feel anxious today?",
	},
	{
		keywords: []string{"happy", "good", "great"},
		reply:    "I'm so glad to hear you're feeling good! It's important to celebrate these positive moments. What's contributing to your happiness today?",
	},
	{
		keywords: []string{"stressed", "overwhelmed"},
		reply:    "Feeling stressed is your body's way of telling you that you need care and attention. Let's work together to identify what's causing this stress and find healthy ways to manage it.",
	},
}

var fallbackReplies = []string{
	"I hear you, and I want you to know that your feelings are completely valid. Sometimes just acknowledging how we feel is the first step toward healing.",
	"Thank you for sharing that with me. It takes courage to open up about our inner experiences. What would help you feel more supported right now?",
	"I'm here to listen and support you. Remember, it's okay to have difficult days - they don't define your worth or your future.",
	"That sounds challenging. You're doing great by reaching out and talking about it. What small step could you take today to care for yourself?",
	"I appreciate you trusting me with your thoughts. Sometimes talking through our feelings can help us see them from a new perspective.",
	"Your mental health matters, and so do you. What brings you comfort or peace when you're feeling this way?",
	"It's wonderful that you're taking time to check in with yourself. Self-awareness is a powerful tool for wellbeing.",
	"I'm glad you're here. Remember, seeking support is a sign of strength, not weakness. What would make you feel most supported right now?",
}

// Reply returns the companion's response to the given input. Keyword rules
// are matched case-insensitively; anything else draws a random fallback.
func (s *Selector) Reply(input string) string {
	lower := strings.ToLower(input)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}

	return fallbackReplies[s.rand.Intn(len(fallbackReplies))]
}

// Delay returns the simulated thinking time before a reply posts: the base
// delay plus up to two seconds of jitter. Replies post in schedule order,
// which for overlapping sends is not necessarily submit order; nothing
// downstream depends on the ordering.
func (s *Selector) Delay() time.Duration {
	return s.baseDelay + time.Duration(s.rand.Intn(2000))*time.Millisecond
}
