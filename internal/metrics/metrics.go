package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dreamjob_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type", "entity"},
	)
	OperationDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "dreamjob_repository_operation_duration_seconds",
			Help:       "Duration of repository operations.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"entity", "operation"},
	)
	RegisteredUsersCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dreamjob_users_registered_total",
			Help: "Total number of created user accounts.",
		},
	)
	UserConflictsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dreamjob_user_email_conflicts_total",
			Help: "Total number of user registrations declined because the email is taken.",
		},
	)
	ExpiredVacanciesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dreamjob_vacancies_expired_total",
			Help: "Total number of vacancies removed by the cleaner.",
		},
	)
)

func init() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(OperationDuration)
	prometheus.MustRegister(RegisteredUsersCounter)
	prometheus.MustRegister(UserConflictsCounter)
	prometheus.MustRegister(ExpiredVacanciesCounter)
}

func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(addr, nil))
	}()
	log.Infof("metrics server listening on %s", addr)
}
