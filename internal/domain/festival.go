package domain

// Festival is a cultural event record, keyed by the identifier carried in the
// public open-data export rather than an autoincrement.
type Festival struct {
	ID          string  `json:"id" gorm:"primaryKey;size:20"`
	Name        string  `json:"name" gorm:"size:100;not null"`
	Discipline  string  `json:"discipline" gorm:"size:200;not null"`
	Description *string `json:"description,omitempty" gorm:"size:500"`
	Website     *string `json:"website,omitempty"`
	Period      *string `json:"period,omitempty" gorm:"size:100"`
	Region      *string `json:"region,omitempty" gorm:"size:100"`
	Department  *string `json:"department,omitempty" gorm:"size:100"`
	Commune     *string `json:"commune,omitempty" gorm:"size:100"`
	Postcode    *string `json:"postcode,omitempty" gorm:"size:5"`
}

func (Festival) TableName() string { return "festival" }
