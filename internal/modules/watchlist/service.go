package watchlist

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kallias/watchboard/internal/domain"
	"github.com/kallias/watchboard/internal/symbols"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrDuplicate marks an add for a symbol that is already watched.
var ErrDuplicate = errors.New("symbol already on watchlist")

// ErrUnknownCategory marks a category outside the fixed set.
var ErrUnknownCategory = errors.New("unknown category")

// Service owns watchlist rules: symbol normalization, category checks, and
// the YAML exchange format.
type Service struct {
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a new watchlist service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "watchlist").Logger(),
	}
}

// List returns watchlist entries, all of them or one category's worth
func (s *Service) List(category string) ([]Entry, error) {
	if category == "" {
		return s.repo.List()
	}

	if !IsValidCategory(category) {
		return nil, fmt.Errorf("%s: %w", category, ErrUnknownCategory)
	}
	return s.repo.ListByCategory(category)
}

// Add normalizes and stores a new symbol
func (s *Service) Add(rawSymbol, name, category string) (*Entry, error) {
	symbol := symbols.Normalize(rawSymbol)
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol: %w", domain.ErrDegenerateInput)
	}

	if category == "" {
		category = DefaultCategory
	}
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("%s: %w", category, ErrUnknownCategory)
	}

	existing, err := s.repo.GetBySymbol(symbol)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%s: %w", symbol, ErrDuplicate)
	}

	if err := s.repo.Insert(symbol, name, category); err != nil {
		return nil, err
	}

	return s.repo.GetBySymbol(symbol)
}

// Remove deletes a symbol from the watchlist
func (s *Service) Remove(rawSymbol string) error {
	symbol := symbols.Normalize(rawSymbol)

	found, err := s.repo.Delete(symbol)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s: %w", symbol, domain.ErrNotFound)
	}

	s.log.Info().Str("symbol", symbol).Msg("Removed from watchlist")
	return nil
}

// ExportYAML renders the watchlist as a category-to-symbols mapping. Every
// fixed category appears, empty ones as [], in display order.
func (s *Service) ExportYAML() ([]byte, error) {
	entries, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]string, len(Categories))
	for _, e := range entries {
		byCategory[e.Category] = append(byCategory[e.Category], e.Symbol)
	}

	// yaml.v3 sorts plain map keys, so the document is built as an
	// explicit node tree to keep the fixed category order
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, category := range Categories {
		syms := byCategory[category]
		sort.Strings(syms)

		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, sym := range syms {
			seq.Content = append(seq.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: sym,
			})
		}

		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: category},
			seq,
		)
	}

	return yaml.Marshal(root)
}

// ImportYAML merges a category-to-symbols document into the watchlist.
// Symbols normalize on the way in; a symbol seen under two categories keeps
// the first in display order; categories outside the fixed set are ignored,
// matching the export shape. Existing display names survive re-import.
// Returns the number of symbols written.
func (s *Service) ImportYAML(data []byte) (int, error) {
	var doc map[string][]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("invalid watchlist document: %w", err)
	}

	seen := make(map[string]bool)
	var entries []Entry

	for _, category := range Categories {
		for _, raw := range doc[category] {
			symbol := symbols.Normalize(raw)
			if symbol == "" || seen[symbol] {
				continue
			}
			seen[symbol] = true
			entries = append(entries, Entry{Symbol: symbol, Category: category})
		}
	}

	if len(entries) == 0 {
		return 0, nil
	}

	if err := s.repo.UpsertMany(entries); err != nil {
		return 0, err
	}

	s.log.Info().Int("count", len(entries)).Msg("Watchlist imported")
	return len(entries), nil
}
