package morse

import (
	"fmt"
	"strings"
)

// PriorityOrder lists character sets from highest to lowest priority.
// When two sets assign the same pattern to different characters, the set
// listed first owns the pattern.
type PriorityOrder []CharacterSet

// DefaultPriority returns the order used when none is configured.
func DefaultPriority() PriorityOrder {
	return PriorityOrder{Latin}
}

// Signature returns a stable key identifying the order.
func (o PriorityOrder) Signature() string {
	names := make([]string, len(o))
	for i, cs := range o {
		names[i] = cs.String()
	}
	return strings.Join(names, ",")
}

// Validate checks that the order is non-empty and names only valid sets.
func (o PriorityOrder) Validate() error {
	if len(o) == 0 {
		return newConfigError(ErrInvalidOptions, "priority", "empty")
	}
	for _, cs := range o {
		if !cs.IsValid() {
			return newConfigError(ErrUnknownCharacterSet, "priority", cs.String())
		}
	}
	return nil
}

// Expand returns the order followed by every remaining valid set in
// canonical order. Duplicates and invalid sets are dropped.
func (o PriorityOrder) Expand() PriorityOrder {
	seen := make(map[CharacterSet]bool, len(validCharacterSets))
	out := make(PriorityOrder, 0, len(validCharacterSets))
	for _, cs := range o {
		if cs.IsValid() && !seen[cs] {
			seen[cs] = true
			out = append(out, cs)
		}
	}
	for _, cs := range CharacterSets() {
		if !seen[cs] {
			out = append(out, cs)
		}
	}
	return out
}

// ParsePriorityOrder parses a comma-separated list of set names.
func ParsePriorityOrder(s string) (PriorityOrder, error) {
	var order PriorityOrder
	for _, name := range strings.Split(s, ",") {
		cs, err := ParseCharacterSet(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("priority order: %w", err)
		}
		order = append(order, cs)
	}
	return order, nil
}

func (o PriorityOrder) clone() PriorityOrder {
	return append(PriorityOrder(nil), o...)
}
