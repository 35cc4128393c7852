package events

import "github.com/maxaizer/dreamjob-store/internal/entities"

var VacancyExpiredTopic = "VacancyExpiredEvent"

type VacancyExpired struct {
	Vacancy entities.Vacancy
}
