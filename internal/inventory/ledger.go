package inventory

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/bloom/internal/domain"
)

// Persister saves the aggregate state after a mutation
type Persister interface {
	Persist(ctx context.Context) error
}

// Ledger holds the player's items as one stack per (kind, species), in the
// order each stack was first created. Stacks never hold zero items.
type Ledger struct {
	stacks    []domain.InventoryStack
	persister Persister
}

// NewLedger restores a ledger from saved stacks
func NewLedger(items []domain.InventoryStack, persister Persister) *Ledger {
	return &Ledger{
		stacks:    slices.Clone(items),
		persister: persister,
	}
}

// Add puts one item into its stack, creating the stack if needed
func (l *Ledger) Add(ctx context.Context, kind domain.ItemKind, speciesID string) (*domain.InventoryStack, error) {
	return l.AddQuantity(ctx, kind, speciesID, 1)
}

// AddQuantity adds n items with a single save
func (l *Ledger) AddQuantity(ctx context.Context, kind domain.ItemKind, speciesID string, n int) (*domain.InventoryStack, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown item kind %q", domain.ErrInvalidInput, kind)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, n)
	}

	i := l.find(kind, speciesID)
	if i < 0 {
		l.stacks = append(l.stacks, domain.InventoryStack{Kind: kind, SpeciesID: speciesID})
		i = len(l.stacks) - 1
	}
	l.stacks[i].Amount += n

	stack := l.stacks[i]
	if err := l.persister.Persist(ctx); err != nil {
		return &stack, err
	}
	return &stack, nil
}

// Remove takes one item out of its stack and drops the stack when it empties
func (l *Ledger) Remove(ctx context.Context, kind domain.ItemKind, speciesID string) error {
	i := l.find(kind, speciesID)
	if i < 0 {
		return fmt.Errorf("%w: %s %s", domain.ErrNotInInventory, kind, speciesID)
	}

	l.stacks[i].Amount--
	if l.stacks[i].Amount <= 0 {
		l.stacks = slices.Delete(l.stacks, i, i+1)
	}

	return l.persister.Persist(ctx)
}

// Get returns a copy of the stack at a display index
func (l *Ledger) Get(index int) (*domain.InventoryStack, error) {
	if index < 0 || index >= len(l.stacks) {
		return nil, fmt.Errorf("%w: %d (have %d stacks)", domain.ErrInvalidIndex, index, len(l.stacks))
	}
	stack := l.stacks[index]
	return &stack, nil
}

// Amount returns how many of an item the ledger holds
func (l *Ledger) Amount(kind domain.ItemKind, speciesID string) int {
	if i := l.find(kind, speciesID); i >= 0 {
		return l.stacks[i].Amount
	}
	return 0
}

// StackCount returns the number of distinct stacks
func (l *Ledger) StackCount() int {
	return len(l.stacks)
}

// All returns a copy of every stack in display order
func (l *Ledger) All() []domain.InventoryStack {
	return slices.Clone(l.stacks)
}

func (l *Ledger) find(kind domain.ItemKind, speciesID string) int {
	return slices.IndexFunc(l.stacks, func(s domain.InventoryStack) bool {
		return s.Kind == kind && s.SpeciesID == speciesID
	})
}
