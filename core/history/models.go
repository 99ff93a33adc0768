package history

import "time"

// Status of a recorded run.
const (
	StatusApplied = "applied"
	StatusDryRun  = "dry_run"
	StatusFailed  = "failed"
)

// Run is one reconcile run.
type Run struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Source         string    `gorm:"size:16;not null" json:"source"`
	OriginalPath   string    `gorm:"size:1024" json:"original_path"`
	ModifiedPath   string    `gorm:"size:1024" json:"modified_path"`
	Status         string    `gorm:"size:16;not null;index" json:"status"`
	ErrorCode      string    `gorm:"size:32" json:"error_code,omitempty"`
	Error          string    `gorm:"type:text" json:"error,omitempty"`
	OriginalBlocks int       `json:"original_blocks"`
	ModifiedBlocks int       `json:"modified_blocks"`
	Remapped       int       `json:"remapped"`
	Dropped        int       `json:"dropped"`
	BackupKey      string    `gorm:"size:1024" json:"backup_key,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides the GORM default.
func (Run) TableName() string {
	return "reconcile_runs"
}
