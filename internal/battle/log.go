package battle

// MaxLogEntries is how many of the most recent log entries a battle keeps
const MaxLogEntries = 5

// LogType classifies a battle log entry
type LogType string

// Log entry types
const (
	LogBattleStart  LogType = "battle_start"
	LogPlayerAttack LogType = "player_attack"
	LogEnemyAttack  LogType = "enemy_attack"
	LogPlayerWin    LogType = "player_win"
	LogEnemyWin     LogType = "enemy_win"
	LogEscape       LogType = "escape"
	LogCapture      LogType = "capture"
)

// LogEntry is one human readable turn event
type LogEntry struct {
	Type    LogType `json:"type"`
	Message string  `json:"message"`
	Damage  int     `json:"damage,omitempty"`
}

func appendLog(log []LogEntry, entry LogEntry) []LogEntry {
	log = append(log, entry)
	if len(log) > MaxLogEntries {
		log = append([]LogEntry(nil), log[len(log)-MaxLogEntries:]...)
	}
	return log
}
