package store

import "strings"

// Key namespaces carried over from the original client's storage layout.
// The per-email profile key coexists with the global one; reconciliation
// merges them.

const (
	globalProfileKey   = "userProfile"
	registeredUsersKey = "registeredUsers"
)

func GlobalProfileKey() string { return globalProfileKey }

func RegisteredUsersKey() string { return registeredUsersKey }

func UserProfileKey(email string) string {
	return "userProfile:" + email
}

func SessionUserKey(email string) string {
	return "user:" + email
}

func ExerciseLogKey(email, date string) string {
	return "completedExercises:" + email + ":" + date
}

func ExerciseLogPrefix(email string) string {
	return "completedExercises:" + email + ":"
}

// ExerciseLogDate extracts the date segment from an exercise-log key.
// Returns "" when the key does not carry one.
func ExerciseLogDate(email, key string) string {
	prefix := ExerciseLogPrefix(email)
	if !strings.HasPrefix(key, prefix) {
		return ""
	}
	return key[len(prefix):]
}

func RecommendationHistoryKey(email string) string {
	return "recommendationHistory:" + email
}

func WeeklyPlanKey(email string) string {
	return "weeklyPlan:" + email
}
