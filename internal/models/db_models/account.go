package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string
	// Private accounts require follow requests to be accepted before the
	// follower edge becomes active.
	IsPrivate bool
}
