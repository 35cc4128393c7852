package logger

import (
	"github.com/maxaizer/dreamjob-store/internal/config"
	"github.com/maxaizer/dreamjob-store/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"io"
	"testing"
)

func Test_ParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, parseLevel(config.LevelDebug))
	assert.Equal(t, log.WarnLevel, parseLevel(config.LevelWarning))
	assert.Equal(t, log.ErrorLevel, parseLevel(config.LevelError))
	assert.Equal(t, log.InfoLevel, parseLevel("unknown"))
}

func Test_ErrorsCounterHook_CountsByTypeAndEntity(t *testing.T) {
	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(&errorsCounterHook{})

	userFaults := metrics.ErrorsCounter.WithLabelValues(ErrorTypeDb, "user")
	untyped := metrics.ErrorsCounter.WithLabelValues("unknown", "none")
	userBefore := testutil.ToFloat64(userFaults)
	untypedBefore := testutil.ToFloat64(untyped)

	logger.WithFields(log.Fields{ErrorTypeField: ErrorTypeDb, EntityField: "user"}).Error("users table is locked")
	logger.Error("something else")
	logger.WithFields(log.Fields{ErrorTypeField: ErrorTypeDb, EntityField: "user"}).Warn("not counted")

	assert.Equal(t, userBefore+1, testutil.ToFloat64(userFaults))
	assert.Equal(t, untypedBefore+1, testutil.ToFloat64(untyped))
}
