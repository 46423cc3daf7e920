package achievement

// Category groups achievements by the metric that drives their progress.
type Category string

const (
	CategoryStreak      Category = "streak"
	CategoryCompletion  Category = "completion"
	CategoryLevel       Category = "level"
	CategoryConsistency Category = "consistency"
	CategoryVariety     Category = "variety"
)

// Rarity is a display tier, from common to legendary.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Definition is a static achievement rule. Definitions are never persisted;
// unlock state is re-derived from the ledger and user stats on every pass.
type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Badge       string
	Requirement int
	Category    Category
	Rarity      Rarity
}

// Catalog is the full achievement table, ordered for display.
var Catalog = []Definition{
	{ID: "first-streak", Title: "Getting Started", Description: "Complete your first habit", Icon: "🌱", Badge: "🌱", Requirement: 1, Category: CategoryStreak, Rarity: RarityCommon},
	{ID: "week-warrior", Title: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥", Badge: "🔥", Requirement: 7, Category: CategoryStreak, Rarity: RarityCommon},
	{ID: "fortnight-hero", Title: "Fortnight Hero", Description: "Maintain a 14-day streak", Icon: "⚡", Badge: "⚡", Requirement: 14, Category: CategoryStreak, Rarity: RarityRare},
	{ID: "month-master", Title: "Month Master", Description: "Maintain a 30-day streak", Icon: "💎", Badge: "💎", Requirement: 30, Category: CategoryStreak, Rarity: RarityEpic},
	{ID: "century-champion", Title: "Century Champion", Description: "Maintain a 100-day streak", Icon: "👑", Badge: "👑", Requirement: 100, Category: CategoryStreak, Rarity: RarityLegendary},

	{ID: "level-up", Title: "Level Up", Description: "Reach level 5", Icon: "⭐", Badge: "⭐", Requirement: 5, Category: CategoryLevel, Rarity: RarityCommon},
	{ID: "experienced", Title: "Experienced", Description: "Reach level 10", Icon: "🌟", Badge: "🌟", Requirement: 10, Category: CategoryLevel, Rarity: RarityRare},
	{ID: "expert", Title: "Expert", Description: "Reach level 20", Icon: "💫", Badge: "💫", Requirement: 20, Category: CategoryLevel, Rarity: RarityEpic},
	{ID: "master", Title: "Master", Description: "Reach level 50", Icon: "🏆", Badge: "🏆", Requirement: 50, Category: CategoryLevel, Rarity: RarityLegendary},

	{ID: "first-hundred", Title: "First Hundred", Description: "Complete 100 habits total", Icon: "💯", Badge: "💯", Requirement: 100, Category: CategoryCompletion, Rarity: RarityCommon},
	{ID: "five-hundred", Title: "Five Hundred Club", Description: "Complete 500 habits total", Icon: "🎯", Badge: "🎯", Requirement: 500, Category: CategoryCompletion, Rarity: RarityRare},
	{ID: "thousand", Title: "Thousand Strong", Description: "Complete 1000 habits total", Icon: "🚀", Badge: "🚀", Requirement: 1000, Category: CategoryCompletion, Rarity: RarityEpic},

	{ID: "perfect-week", Title: "Perfect Week", Description: "Complete all habits for 7 days straight", Icon: "🎪", Badge: "🎪", Requirement: 7, Category: CategoryConsistency, Rarity: RarityRare},
	{ID: "perfect-month", Title: "Perfect Month", Description: "Complete all habits for 30 days straight", Icon: "🎭", Badge: "🎭", Requirement: 30, Category: CategoryConsistency, Rarity: RarityLegendary},

	{ID: "diversified", Title: "Diversified", Description: "Create habits in 5 different categories", Icon: "🌈", Badge: "🌈", Requirement: 5, Category: CategoryVariety, Rarity: RarityRare},
	{ID: "habit-collector", Title: "Habit Collector", Description: "Create 20 different habits", Icon: "📚", Badge: "📚", Requirement: 20, Category: CategoryVariety, Rarity: RarityEpic},
}
