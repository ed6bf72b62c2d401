package constants

const (
	AppName           = "bloom"
	DefaultConfigPath = "~/.config/bloom/bloom.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys for durable records. Daily records append a date suffix
	// via storage.DayKey.
	KeyUser         = "user"
	KeyStats        = "stats"
	KeyWorkouts     = "workouts"
	KeyAchievements = "achievements"
	KeyChallenge    = "challenge"
	KeyMeals        = "meals"
	KeyMoods        = "moods"
	KeyProgress     = "progress"

	// Experience awards per action
	XPWater     = 10
	XPMood      = 10
	XPMeal      = 15
	XPRitual    = 20
	XPPhoto     = 30
	XPWorkout   = 50
	XPChallenge = 100

	// WaterGoalML is the daily hydration target that unlocks the
	// hydration achievement.
	WaterGoalML = 2000

	// DefaultWaterSipML is the amount logged when no amount is given.
	DefaultWaterSipML = 200

	// StreakGapDays is the maximum whole-day gap between activity dates
	// that still continues a streak.
	StreakGapDays = 2

	// ChallengeDays is the length of the fixed challenge sequence.
	ChallengeDays = 30

	// Keyring identifiers for the image enhancement API key
	DefaultKeyringUser = "enhance-api-key"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "bloom-"
)
