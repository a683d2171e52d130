package models

// Goal is one of the eight fixed objectives a user picks at sign-up. It
// decides which habits are seeded and flavors every generated plan.
type Goal string

const (
	GoalWeightLoss         Goal = "Weight Loss"
	GoalWeightGain         Goal = "Weight Gain"
	GoalBuildMuscle        Goal = "Build Muscle"
	GoalCoreStrength       Goal = "Core Strength"
	GoalStamina            Goal = "Stamina"
	GoalImproveFlexibility Goal = "Improve Flexibility"
	GoalMaintainWeight     Goal = "Maintain Weight"
	GoalEatHealthier       Goal = "Eat Healthier"
)

// Goals lists every valid goal, in display order.
var Goals = []Goal{
	GoalWeightLoss,
	GoalWeightGain,
	GoalBuildMuscle,
	GoalCoreStrength,
	GoalStamina,
	GoalImproveFlexibility,
	GoalMaintainWeight,
	GoalEatHealthier,
}

// WeightRelatedGoals are the goals whose sign-up flow also collects
// current and target weight.
var WeightRelatedGoals = []Goal{GoalWeightLoss, GoalWeightGain, GoalBuildMuscle}

func (g Goal) Valid() bool {
	for _, v := range Goals {
		if g == v {
			return true
		}
	}
	return false
}

// WeightRelated reports whether sign-up must collect weight details for g.
func (g Goal) WeightRelated() bool {
	for _, v := range WeightRelatedGoals {
		if g == v {
			return true
		}
	}
	return false
}

type Gender string

const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderPreferNotToSay Gender = "Prefer not to say"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderPreferNotToSay
}

type SleepQuality string

const (
	SleepPoor    SleepQuality = "Poor"
	SleepAverage SleepQuality = "Average"
	SleepGood    SleepQuality = "Good"
)

func (s SleepQuality) Valid() bool {
	return s == SleepPoor || s == SleepAverage || s == SleepGood
}

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "Low"
	EnergyMedium EnergyLevel = "Medium"
	EnergyHigh   EnergyLevel = "High"
)

func (e EnergyLevel) Valid() bool {
	return e == EnergyLow || e == EnergyMedium || e == EnergyHigh
}

type Mood string

const (
	MoodSad     Mood = "Sad"
	MoodNeutral Mood = "Neutral"
	MoodHappy   Mood = "Happy"
)

func (m Mood) Valid() bool {
	return m == MoodSad || m == MoodNeutral || m == MoodHappy
}

// DailyVibe is the user's once-per-day sleep/energy/mood check-in. It is
// cleared at day rollover.
type DailyVibe struct {
	Sleep  SleepQuality `bson:"sleep" json:"sleep"`
	Energy EnergyLevel  `bson:"energy" json:"energy"`
	Mood   Mood         `bson:"mood" json:"mood"`
}

func (v DailyVibe) Valid() bool {
	return v.Sleep.Valid() && v.Energy.Valid() && v.Mood.Valid()
}

// Habit is a daily task seeded from the catalog at sign-up. Only the
// Completed flag changes after creation.
type Habit struct {
	ID        int    `bson:"id" json:"id"`
	Text      string `bson:"text" json:"text"`
	XP        int    `bson:"xp" json:"xp"`
	Completed bool   `bson:"completed" json:"completed"`
	Category  Goal   `bson:"category" json:"category"`
}

// GamificationStats tracks experience, level, streak and earned badges.
// Badges are append-only; they are never revoked.
type GamificationStats struct {
	XP     int      `bson:"xp" json:"xp"`
	Level  int      `bson:"level" json:"level"`
	Streak int      `bson:"streak" json:"streak"`
	Badges []string `bson:"badges" json:"badges"`
}

type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

type ChatMessage struct {
	Role    ChatRole `bson:"role" json:"role"`
	Content string   `bson:"content" json:"content"`
}

type UserProfile struct {
	Email          string   `bson:"email" json:"email"`
	Name           string   `bson:"name" json:"name"`
	Age            int      `bson:"age" json:"age"`
	Gender         Gender   `bson:"gender" json:"gender"`
	Goal           Goal     `bson:"goal" json:"goal"`
	CurrentWeight  *float64 `bson:"current_weight,omitempty" json:"current_weight,omitempty"`
	TargetWeight   *float64 `bson:"target_weight,omitempty" json:"target_weight,omitempty"`
	ProfilePicture string   `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
}

// UserRecord is the whole per-user document, keyed by email. The store
// always replaces it atomically; no partial writes are visible.
type UserRecord struct {
	Profile      UserProfile       `bson:"profile" json:"profile"`
	PasswordHash string            `bson:"password_hash" json:"password_hash"` // storage only; handlers never echo it
	Habits       []Habit           `bson:"habits" json:"habits"`
	Stats        GamificationStats `bson:"stats" json:"stats"`
	WaterCount   int               `bson:"water_count" json:"water_count"`
	LastDate     string            `bson:"last_date,omitempty" json:"last_date,omitempty"` // YYYY-MM-DD, empty when never set
	DailyVibe    *DailyVibe        `bson:"daily_vibe,omitempty" json:"daily_vibe,omitempty"`
	ChatHistory  []ChatMessage     `bson:"chat_history" json:"chat_history"`
	ChatVersion  int               `bson:"chat_version" json:"chat_version"` // bumps on every transcript write; guards stale AI replies
}

// Clone returns a deep copy of the record so callers can mutate freely
// without aliasing stored state.
func (u *UserRecord) Clone() *UserRecord {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Habits = append([]Habit(nil), u.Habits...)
	cp.Stats.Badges = append([]string(nil), u.Stats.Badges...)
	cp.ChatHistory = append([]ChatMessage(nil), u.ChatHistory...)
	if u.Profile.CurrentWeight != nil {
		w := *u.Profile.CurrentWeight
		cp.Profile.CurrentWeight = &w
	}
	if u.Profile.TargetWeight != nil {
		w := *u.Profile.TargetWeight
		cp.Profile.TargetWeight = &w
	}
	if u.DailyVibe != nil {
		v := *u.DailyVibe
		cp.DailyVibe = &v
	}
	return &cp
}
