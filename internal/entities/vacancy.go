package entities

import "time"

// Vacancy is a job posting. CityID and FileID reference records kept outside
// of this module; FileID 0 means the vacancy has no attachment.
type Vacancy struct {
	ID           int `gorm:"primaryKey;autoIncrement"`
	Title        string
	Description  string
	CreationDate time.Time
	Visible      bool
	CityID       int
	FileID       int
}

func NewVacancy(title, description string, creationDate time.Time, visible bool, cityID, fileID int) Vacancy {
	return Vacancy{
		Title:        title,
		Description:  description,
		CreationDate: creationDate,
		Visible:      visible,
		CityID:       cityID,
		FileID:       fileID,
	}
}

// WithID returns a copy of the vacancy that carries the given id.
func (v Vacancy) WithID(id int) Vacancy {
	v.ID = id
	return v
}
