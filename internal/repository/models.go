package repository

import "time"

// Account is a registered user. Created on registration, read on login,
// never mutated elsewhere.
type Account struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;size:120"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255"`
	PasswordHash string    `gorm:"column:password_hash;size:72"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (Account) TableName() string {
	return "accounts"
}

// ScanRecord is one logged analysis tied to an account. Created once per
// successful authenticated scan, never updated or deleted.
type ScanRecord struct {
	ID        uint      `gorm:"primaryKey"`
	AccountID uint      `gorm:"column:account_id;index"`
	Account   *Account  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	ImagePath string    `gorm:"column:image_path;size:512"`
	Score     string    `gorm:"column:score;size:64"`
	Verdict   string    `gorm:"column:verdict;size:32"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (ScanRecord) TableName() string {
	return "scan_records"
}
