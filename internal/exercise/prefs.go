package exercise

// DefaultWeaknessThreshold is the success-rate percentage below which a
// type counts as weak in the stats views. The queue comparator does not
// read it directly, but it is part of the persisted preferences.
const DefaultWeaknessThreshold = 70.0

// Preferences holds the user's exercise configuration.
type Preferences struct {
	Enabled              map[Type]bool
	PrioritizeWeaknesses bool
	WeaknessThreshold    float64
}

// DefaultPreferences enables exactly the core types with weakness
// prioritization on.
func DefaultPreferences() Preferences {
	enabled := make(map[Type]bool, len(Core))
	for _, t := range Core {
		enabled[t] = true
	}
	return Preferences{
		Enabled:              enabled,
		PrioritizeWeaknesses: true,
		WeaknessThreshold:    DefaultWeaknessThreshold,
	}
}

// IsEnabled reports whether a type is enabled.
func (p Preferences) IsEnabled(t Type) bool {
	return p.Enabled[t]
}

// EnabledTypes returns the enabled types in display order.
func (p Preferences) EnabledTypes() []Type {
	var out []Type
	for _, t := range All {
		if p.Enabled[t] {
			out = append(out, t)
		}
	}
	return out
}

// SetEnabled returns a copy with the given type toggled.
func (p Preferences) SetEnabled(t Type, on bool) Preferences {
	out := p.clone()
	if on {
		out.Enabled[t] = true
	} else {
		delete(out.Enabled, t)
	}
	return out
}

// SetCategory returns a copy with every type in the category toggled.
func (p Preferences) SetCategory(c Category, on bool) Preferences {
	out := p.clone()
	for _, t := range OfCategory(c) {
		if on {
			out.Enabled[t] = true
		} else {
			delete(out.Enabled, t)
		}
	}
	return out
}

// CategoryFullyEnabled reports whether every type in the category is enabled.
func (p Preferences) CategoryFullyEnabled(c Category) bool {
	for _, t := range OfCategory(c) {
		if !p.Enabled[t] {
			return false
		}
	}
	return true
}

// CategoryPartiallyEnabled reports whether at least one but not all types
// in the category are enabled.
func (p Preferences) CategoryPartiallyEnabled(c Category) bool {
	some, all := false, true
	for _, t := range OfCategory(c) {
		if p.Enabled[t] {
			some = true
		} else {
			all = false
		}
	}
	return some && !all
}

func (p Preferences) clone() Preferences {
	enabled := make(map[Type]bool, len(p.Enabled))
	for t, on := range p.Enabled {
		if on {
			enabled[t] = true
		}
	}
	p.Enabled = enabled
	return p
}
