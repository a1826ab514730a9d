package history

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Snapshot is one recorded staticlist state, taken just before a write
// replaced it.
type Snapshot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Host identifies the router the list belonged to.
	Host string `gorm:"size:64;index" json:"host"`

	// Action is the operation that triggered the write: "add" or "restore".
	Action string `gorm:"size:16" json:"action"`

	// Raw is the staticlist value exactly as fetched from the router.
	Raw string `gorm:"type:text" json:"raw"`

	// EntryCount is how many reservations Raw decoded to at the time.
	EntryCount int `json:"entry_count"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name explicit rather than GORM-pluralized.
func (Snapshot) TableName() string {
	return "staticlist_snapshots"
}

// Connect establishes the MySQL connection for the audit trail.
// The trail is optional, so callers should treat an error as a downgrade,
// not a startup failure.
func Connect(cfg Config) (*gorm.DB, error) {
	// URL-encode credentials; passwords with special characters would
	// otherwise corrupt the DSN.
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)

	// GORM's own logging is silenced; connection problems surface through
	// the application logger instead.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Store records and queries snapshots.
type Store struct {
	db *gorm.DB
}

// NewStore creates a snapshot store and ensures its table exists.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &Store{db: db}, nil
}

// Record persists one snapshot.
func (s *Store) Record(ctx context.Context, snap Snapshot) error {
	if err := s.db.WithContext(ctx).Create(&snap).Error; err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}
	return nil
}

// Recent returns the newest snapshots for a host, newest first.
func (s *Store) Recent(ctx context.Context, host string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	var snaps []Snapshot
	err := s.db.WithContext(ctx).
		Where("host = ?", host).
		Order("created_at DESC").
		Limit(limit).
		Find(&snaps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}
	return snaps, nil
}
