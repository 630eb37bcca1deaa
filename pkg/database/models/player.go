package models

import "time"

// Database model for a player.
// PlayerId is the identifier assigned by the stats API and is the upsert key.
type Player struct {
	ID        uint   `gorm:"primaryKey"`
	PlayerId  string `gorm:"type:varchar(16);uniqueIndex"`
	Name      string `gorm:"type:varchar(128);index"`
	FirstName string `gorm:"type:varchar(64)"`
	LastName  string `gorm:"type:varchar(64)"`
	TeamId    *uint  `gorm:"index"`
	Team      *Team  `gorm:"foreignKey:TeamId"`

	// Player details.
	Position    *string    `gorm:"type:varchar(8);index"`
	Height      *string    `gorm:"type:varchar(16)"`
	Weight      *int
	BirthDate   *time.Time `gorm:"type:date"`
	BirthPlace  *string    `gorm:"type:varchar(128)"`
	College     *string    `gorm:"type:varchar(128)"`
	DraftYear   *int
	DraftRound  *int
	DraftNumber *int

	// Status.
	IsActive     bool    `gorm:"default:true;index"`
	JerseyNumber *string `gorm:"type:varchar(8)"`

	// Owned rows, removed together with the player.
	GameStats   []PlayerGameStats   `gorm:"foreignKey:PlayerId;constraint:OnDelete:CASCADE"`
	SeasonStats []PlayerSeasonStats `gorm:"foreignKey:PlayerId;constraint:OnDelete:CASCADE"`
}
