package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MiddlewareTestSuite struct {
	suite.Suite
	logger       *zap.Logger
	observedLogs *observer.ObservedLogs
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (suite *MiddlewareTestSuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.logger = zap.New(observedZapCore)
}

func (suite *MiddlewareTestSuite) TestRecoverer_WritesErrorEnvelope() {
	handler := recoverer(responder{logger: suite.logger})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("spilled the milk")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/drinks", nil))

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.JSONEq(`{"success":false,"error":500,"message":"Internal Server Error"}`, recorder.Body.String())
	suite.NotContains(recorder.Body.String(), "spilled")
	suite.Equal(1, suite.observedLogs.FilterMessage("panic recovered").Len())
}

func (suite *MiddlewareTestSuite) TestRequestLogger_KeepsIncomingRequestID() {
	handler := requestLogger(suite.logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	request := httptest.NewRequest(http.MethodGet, "/drinks", nil)
	request.Header.Set("X-Request-Id", "order-17")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	suite.Equal("order-17", recorder.Header().Get("X-Request-Id"))

	logs := suite.observedLogs.FilterMessage("request").All()
	suite.Require().Len(logs, 1)
	suite.Equal("order-17", logs[0].ContextMap()["request_id"])
	suite.Equal(int64(http.StatusTeapot), logs[0].ContextMap()["status"])
}

func (suite *MiddlewareTestSuite) TestRequestLogger_GeneratesRequestID() {
	handler := requestLogger(suite.logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/drinks", nil))

	suite.Len(recorder.Header().Get("X-Request-Id"), 36)
	suite.Equal(int64(http.StatusOK), suite.observedLogs.FilterMessage("request").All()[0].ContextMap()["status"])
}
