package models

// Database model for a NBA team.
// TeamId is the identifier assigned by the stats API and is the upsert key.
type Team struct {
	ID             uint    `gorm:"primaryKey"`
	TeamId         string  `gorm:"type:varchar(16);uniqueIndex"`
	Name           string  `gorm:"type:varchar(64);index"`
	Abbreviation   string  `gorm:"type:varchar(8);uniqueIndex"`
	City           *string `gorm:"type:varchar(64)"`
	State          *string `gorm:"type:varchar(32)"`
	Conference     *string `gorm:"type:varchar(32);index"`
	Division       *string `gorm:"type:varchar(32);index"`
	Arena          *string `gorm:"type:varchar(128)"`
	ArenaCapacity  *int
	Founded        *int
	PrimaryColor   *string `gorm:"type:varchar(32)"`
	SecondaryColor *string `gorm:"type:varchar(32)"`
	LogoUrl        *string `gorm:"type:varchar(256)"`

	// Owned rows.
	Players   []Player    `gorm:"foreignKey:TeamId"`
	TeamStats []TeamStats `gorm:"foreignKey:TeamId"`
	HomeGames []Game      `gorm:"foreignKey:HomeTeamId"`
	AwayGames []Game      `gorm:"foreignKey:AwayTeamId"`
}
