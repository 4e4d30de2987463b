package catalog

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Rituals: defaultRituals(),
		Rewards: defaultRewards(),
		Bonuses: defaultBonuses(),
	}
}

func defaultRituals() []Ritual {
	return []Ritual{
		{Key: "wakeup", Name: "Wake up on time", Points: 2, Slot: SlotMorning, Description: "Same time every day"},
		{Key: "brush_morning", Name: "Brush teeth", Points: 1, Slot: SlotMorning, Description: "Morning"},
		{Key: "breakfast", Name: "Make breakfast", Points: 2, Slot: SlotMorning, Description: "Something healthy"},
		{Key: "sport", Name: "Morning workout", Points: 4, Slot: SlotMorning, Description: "30 min"},
		{Key: "water_morning", Name: "Glass of water", Points: 1, Slot: SlotMorning, Description: "Before eating"},
		{Key: "vitamins", Name: "Vitamins", Points: 1, Slot: SlotMorning, Description: "With food"},
		{Key: "learning_morning", Name: "Self-study", Points: 4, Slot: SlotMorning, Description: "30 min, no phone"},

		{Key: "water", Name: "2l of water", Points: 3, Slot: SlotAllDay, Description: "Through the day"},
		{Key: "no_junk_food", Name: "No fast food", Points: 3, Slot: SlotAllDay, Description: "All day"},
		{Key: "no_sugar", Name: "No sugar", Points: 3, Slot: SlotAllDay, Description: "Watch the sugar"},
		{Key: "foreign_language", Name: "Foreign language", Points: 4, Slot: SlotFlexible, Description: "30 min of practice"},
		{Key: "book_speed", Name: "Speed reading", Points: 4, Slot: SlotFlexible, Description: "15-30 min"},
		{Key: "no_social", Name: "No social feeds", Points: 3, Slot: SlotAllDay, Description: "One hour without the phone"},

		{Key: "planning", Name: "Plan tomorrow", Points: 3, Slot: SlotEvening, Description: "In the evening"},
		{Key: "meditation", Name: "Meditation", Points: 3, Slot: SlotEvening, Description: "10-15 min"},
		{Key: "day_review", Name: "Day review", Points: 2, Slot: SlotEvening, Description: "What got done"},
		{Key: "sleep", Name: "Bed on time", Points: 4, Slot: SlotNight, Description: "Same time every day"},
		{Key: "brush_evening", Name: "Brush teeth", Points: 1, Slot: SlotNight, Description: "Before bed"},

		{Key: "outdoor_weekend", Name: "4 hours outdoors", Points: 8, Slot: SlotWeekend, Description: "Over the week"},
		{Key: "week_review", Name: "Week review", Points: 6, Slot: SlotWeekend, Description: "Look back"},
	}
}

func defaultRewards() []Reward {
	return []Reward{
		{ID: 1, Name: "Good coffee", Cost: 10, ResetDays: 1},
		{ID: 2, Name: "Massage / spa", Cost: 80, ResetDays: 7},
		{ID: 3, Name: "Cinema night", Cost: 40, ResetDays: 3},
		{ID: 4, Name: "Restaurant dinner", Cost: 60, ResetDays: 7},
		{ID: 5, Name: "Something new", Cost: 70, ResetDays: 14},
		{ID: 6, Name: "Two hours of nothing", Cost: 30, ResetDays: 1},
	}
}

func defaultBonuses() []Bonus {
	return []Bonus{
		{ID: "saved_income", Name: "Saved 10% of income", Points: 10},
		{ID: "no_impulse_buy", Name: "Skipped an impulse buy", Points: 5},
		{ID: "budget_review", Name: "Reviewed the budget", Points: 5},
		{ID: "side_income", Name: "Earned side income", Points: 15},
		{ID: "invested", Name: "Made an investment", Points: 20},
	}
}
