package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Slot string

const (
	SlotMorning  Slot = "morning"
	SlotAllDay   Slot = "all-day"
	SlotFlexible Slot = "flexible"
	SlotEvening  Slot = "evening"
	SlotNight    Slot = "night"
	SlotWeekend  Slot = "weekend"
)

func (s Slot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAllDay, SlotFlexible, SlotEvening, SlotNight, SlotWeekend:
		return true
	default:
		return false
	}
}

// Slots lists the time slots in display order.
var Slots = []Slot{SlotMorning, SlotAllDay, SlotFlexible, SlotEvening, SlotNight, SlotWeekend}

type Ritual struct {
	Key         string `yaml:"key" json:"key"`
	Name        string `yaml:"name" json:"name"`
	Points      int    `yaml:"points" json:"points"`
	Slot        Slot   `yaml:"slot" json:"slot"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type Reward struct {
	ID        int    `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Cost      int    `yaml:"cost" json:"cost"`
	ResetDays int    `yaml:"reset_days" json:"reset_days"`
}

type Bonus struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Points int    `yaml:"points" json:"points"`
}

// Catalog is the static configuration the engine reads. It is never mutated
// after Load/Default returns.
type Catalog struct {
	Rituals []Ritual `yaml:"rituals"`
	Rewards []Reward `yaml:"rewards"`
	Bonuses []Bonus  `yaml:"bonuses"`
}

// ValidationError reports the first invalid entry found in a catalog.
type ValidationError struct {
	Section string
	Index   int
	Reason  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("catalog %s[%d]: %s", e.Section, e.Index, e.Reason)
}

// Ritual returns the definition for key.
func (c *Catalog) Ritual(key string) (Ritual, bool) {
	for _, r := range c.Rituals {
		if r.Key == key {
			return r, true
		}
	}
	return Ritual{}, false
}

// Bonus looks id up case-insensitively; Parse stores ids lowercased.
func (c *Catalog) Bonus(id string) (Bonus, bool) {
	id = strings.TrimSpace(strings.ToLower(id))
	for _, b := range c.Bonuses {
		if b.ID == id {
			return b, true
		}
	}
	return Bonus{}, false
}

// RitualKeys returns ritual keys in catalog order.
func (c *Catalog) RitualKeys() []string {
	keys := make([]string, 0, len(c.Rituals))
	for _, r := range c.Rituals {
		keys = append(keys, r.Key)
	}
	return keys
}

// MaxDailyPoints sums the point values of every non-weekend ritual.
func (c *Catalog) MaxDailyPoints() int {
	total := 0
	for _, r := range c.Rituals {
		if r.Slot != SlotWeekend {
			total += r.Points
		}
	}
	return total
}

func (c *Catalog) Validate() error {
	seenRitual := map[string]bool{}
	for i, r := range c.Rituals {
		switch {
		case strings.TrimSpace(r.Key) == "":
			return ValidationError{Section: "rituals", Index: i, Reason: "key is required"}
		case seenRitual[r.Key]:
			return ValidationError{Section: "rituals", Index: i, Reason: fmt.Sprintf("duplicate key %q", r.Key)}
		case r.Points <= 0:
			return ValidationError{Section: "rituals", Index: i, Reason: "points must be positive"}
		case !r.Slot.IsValid():
			return ValidationError{Section: "rituals", Index: i, Reason: fmt.Sprintf("invalid slot %q", r.Slot)}
		}
		seenRitual[r.Key] = true
	}

	seenReward := map[int]bool{}
	for i, r := range c.Rewards {
		switch {
		case seenReward[r.ID]:
			return ValidationError{Section: "rewards", Index: i, Reason: fmt.Sprintf("duplicate id %d", r.ID)}
		case r.Cost <= 0:
			return ValidationError{Section: "rewards", Index: i, Reason: "cost must be positive"}
		case r.ResetDays <= 0:
			return ValidationError{Section: "rewards", Index: i, Reason: "reset_days must be positive"}
		}
		seenReward[r.ID] = true
	}

	seenBonus := map[string]bool{}
	for i, b := range c.Bonuses {
		switch {
		case strings.TrimSpace(b.ID) == "":
			return ValidationError{Section: "bonuses", Index: i, Reason: "id is required"}
		case seenBonus[b.ID]:
			return ValidationError{Section: "bonuses", Index: i, Reason: fmt.Sprintf("duplicate id %q", b.ID)}
		case b.Points <= 0:
			return ValidationError{Section: "bonuses", Index: i, Reason: "points must be positive"}
		}
		seenBonus[b.ID] = true
	}
	return nil
}

// Load reads a YAML catalog override. Sections missing from the file keep
// their built-in defaults.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Catalog, error) {
	var override Catalog
	if err := yaml.Unmarshal(b, &override); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := Default()
	if len(override.Rituals) > 0 {
		c.Rituals = override.Rituals
	}
	if len(override.Rewards) > 0 {
		c.Rewards = override.Rewards
	}
	if len(override.Bonuses) > 0 {
		c.Bonuses = override.Bonuses
		for i := range c.Bonuses {
			c.Bonuses[i].ID = strings.ToLower(strings.TrimSpace(c.Bonuses[i].ID))
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
