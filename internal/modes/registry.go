package modes

import (
	"strings"
	"unicode"
)

// Default is the mode assigned to a chat that never picked one.
const Default = "general"

// Registry maps persona mode names to the system prompt sent ahead of the
// conversation. It is built once at startup and read-only afterwards; the
// registration order is kept so keyboards render deterministically.
type Registry struct {
	names   []string
	prompts map[string]string
}

// NewRegistry returns the built-in persona set.
func NewRegistry() *Registry {
	r := &Registry{prompts: make(map[string]string)}
	r.register("general", "You are a helpful, concise assistant for everyday questions.")
	r.register("restaurant", "You are a restaurant assistant. Help users find restaurants, suggest dishes, and answer politely.")
	r.register("fitness", "You are a friendly fitness coach. Give workout routines, diet tips, and motivational advice.")
	r.register("realestate", "You are a professional real estate agent. Provide property suggestions, buying/selling advice, and market insights.")
	return r
}

func (r *Registry) register(name, prompt string) {
	r.names = append(r.names, name)
	r.prompts[name] = prompt
}

// Valid reports whether name is a registered mode.
func (r *Registry) Valid(name string) bool {
	_, ok := r.prompts[name]
	return ok
}

// PromptFor returns the system prompt for name, falling back to the default
// mode's prompt for unrecognized names.
func (r *Registry) PromptFor(name string) string {
	if prompt, ok := r.prompts[name]; ok {
		return prompt
	}
	return r.prompts[Default]
}

// Names returns the registered mode names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Title renders a mode name as a user-facing label ("fitness" -> "Fitness").
func Title(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
