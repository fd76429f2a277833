package cli

import (
	"context"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Command is one REPL command
type Command struct {
	// Aliases match case-insensitively; the first is the canonical name
	Aliases     []string
	Description string
	Usage       []string
	Help        []string
	Run         func(ctx context.Context, a *App, args []string) error
}

// Name returns the canonical alias
func (c *Command) Name() string {
	return c.Aliases[0]
}

// Registry resolves aliases to commands
type Registry struct {
	commands    []*Command
	byAlias     map[string]*Command
	suggestions *lru.Cache[string, string]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[string, string](SuggestionCacheSize)
	return &Registry{
		byAlias:     make(map[string]*Command),
		suggestions: cache,
	}
}

// Register adds a command under all of its aliases
func (r *Registry) Register(cmd *Command) {
	r.commands = append(r.commands, cmd)
	for _, alias := range cmd.Aliases {
		r.byAlias[strings.ToLower(alias)] = cmd
	}
	r.suggestions.Purge()
}

// Lookup finds a command by alias, ignoring case
func (r *Registry) Lookup(alias string) (*Command, bool) {
	cmd, ok := r.byAlias[strings.ToLower(alias)]
	return cmd, ok
}

// Commands returns every command sorted by usage text
func (r *Registry) Commands() []*Command {
	sorted := slices.Clone(r.commands)
	slices.SortStableFunc(sorted, func(a, b *Command) int {
		return strings.Compare(strings.Join(a.Usage, ", "), strings.Join(b.Usage, ", "))
	})
	return sorted
}

// Suggest returns the alias closest to a mistyped input, if any is close enough
func (r *Registry) Suggest(input string) (string, bool) {
	input = strings.ToLower(input)
	if len(input) < MinSuggestInput {
		return "", false
	}
	if cached, ok := r.suggestions.Get(input); ok {
		return cached, cached != ""
	}

	best, bestDist := "", -1
	for _, cmd := range r.commands {
		for _, alias := range cmd.Aliases {
			alias = strings.ToLower(alias)
			dist := levenshtein.ComputeDistance(input, alias)
			if dist > levenshteinLimit(len(alias)) {
				continue
			}
			if bestDist < 0 || dist < bestDist || (dist == bestDist && alias < best) {
				best, bestDist = alias, dist
			}
		}
	}

	r.suggestions.Add(input, best)
	return best, best != ""
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
