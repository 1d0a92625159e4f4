package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artfocus/mystock-go/internal/domain/wms"
)

// callbackSpy records the events it receives
type callbackSpy struct {
	dispatched []wms.OrderDispatched
	cancelled  []wms.OrderCancelled
	err        error
}

func (s *callbackSpy) OnOrderDispatched(ctx context.Context, event wms.OrderDispatched) error {
	s.dispatched = append(s.dispatched, event)
	return s.err
}

func (s *callbackSpy) OnOrderCancelled(ctx context.Context, event wms.OrderCancelled) error {
	s.cancelled = append(s.cancelled, event)
	return s.err
}

var _ wms.CallbackHandler = (*callbackSpy)(nil)

func newTestRouter(spy *callbackSpy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewCallbackHandler(spy, zap.NewNop()).RegisterRoutes(engine)
	return engine
}

func postCallback(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleEvent_OrderDispatched(t *testing.T) {
	spy := &callbackSpy{}
	router := newTestRouter(spy)

	rec := postCallback(router,
		`{"eventType":12,"eventSubtype":1,"documentId":"ORD-9","shippingLabel":"DR2082000056C"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, spy.dispatched, 1)
	assert.Equal(t, wms.EventSubtypeCarrier, spy.dispatched[0].EventSubtype)
	assert.Equal(t, "ORD-9", spy.dispatched[0].DocumentID)
	assert.Equal(t, "DR2082000056C", spy.dispatched[0].ShippingLabel)
	assert.Empty(t, spy.cancelled)
}

func TestHandleEvent_OrderCancelled(t *testing.T) {
	spy := &callbackSpy{}
	router := newTestRouter(spy)

	rec := postCallback(router,
		`{"eventType":20,"eventSubtype":3,"documentId":"ORD-10"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, spy.cancelled, 1)
	assert.Equal(t, wms.EventSubtypeOrderIncoming, spy.cancelled[0].EventSubtype)
	assert.Equal(t, "ORD-10", spy.cancelled[0].DocumentID)
}

func TestHandleEvent_MalformedBody(t *testing.T) {
	spy := &callbackSpy{}
	router := newTestRouter(spy)

	rec := postCallback(router, `{"eventType":12}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid callback body")
	assert.Empty(t, spy.dispatched)
}

func TestHandleEvent_UnknownEventType(t *testing.T) {
	spy := &callbackSpy{}
	router := newTestRouter(spy)

	rec := postCallback(router,
		`{"eventType":99,"eventSubtype":1,"documentId":"ORD-9"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, spy.dispatched)
	assert.Empty(t, spy.cancelled)
}

func TestHandleEvent_HandlerFailure(t *testing.T) {
	spy := &callbackSpy{err: errors.New("erp unavailable")}
	router := newTestRouter(spy)

	rec := postCallback(router,
		`{"eventType":20,"eventSubtype":2,"documentId":"ORD-11"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&callbackSpy{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
