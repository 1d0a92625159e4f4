package mystock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfocus/mystock-go/internal/domain/wms"
)

// recordedRequest captures what the test server saw for assertions after the
// round trip.
type recordedRequest struct {
	method   string
	path     string
	username string
	password string
	body     map[string]any
}

func newTestClient(t *testing.T, status int, responseBody string) (*Client, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.method = r.Method
		recorded.path = r.URL.Path
		recorded.username, recorded.password, _ = r.BasicAuth()
		_ = json.NewDecoder(r.Body).Decode(&recorded.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(NewConfig("user", "secret", srv.URL+"/"))
	require.NoError(t, err)
	return client, recorded
}

func TestClient_CreateProduct(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusCreated,
		`{"data":{"ids":[{"id":"P1","recordId":1,"type":"product"}]}}`)

	product := wms.NewProduct("SKU-1", "Widget", wms.ProductTypeGoods, "KS", "1")
	resp, err := client.CreateProduct(context.Background(), product)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/product", recorded.path)
	assert.Equal(t, "user", recorded.username)
	assert.Equal(t, "secret", recorded.password)
	assert.Equal(t, "SKU-1", recorded.body["productCode"])

	assert.True(t, resp.IsOK())
	require.Len(t, resp.IDs, 1)
	assert.Equal(t, "P1", resp.IDs[0].ID)
	assert.Equal(t, 1, resp.IDs[0].RecordID)
	assert.Equal(t, "product", resp.IDs[0].Type)
}

func TestClient_UpdateBarcode(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{}`)

	barcode := wms.NewProductBarcode("P1", "8594001234567")
	resp, err := client.UpdateBarcode(context.Background(), barcode, "B77")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, recorded.method)
	assert.Equal(t, "/productBarcode/B77", recorded.path)
	assert.NotContains(t, recorded.body, "barcode")
	assert.True(t, resp.IsOK())
}

func TestClient_UpdatePartnerUsesCodeAsID(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{}`)

	partner := wms.NewPartner("C001", wms.PartnerTypeCustomer, "Acme s.r.o.")
	_, err := client.UpdatePartner(context.Background(), partner)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, recorded.method)
	assert.Equal(t, "/partner/C001", recorded.path)
}

func TestClient_CreateOrderIncoming(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusCreated,
		`{"data":{"ids":[
			{"id":"X1","recordId":1,"type":"orderIncoming"},
			{"id":"X2","recordId":2,"type":"orderIncomingItem"}
		]}}`)

	order := wms.NewOrderIncoming("ORD-1", wms.OrderTypeExternal, "1", "PA1", "OU1")
	order.AddItem(wms.NewItem("prod-a", decimal.NewFromInt(2)))
	resp, err := client.CreateOrderIncoming(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, "/orderIncoming", recorded.path)
	assert.True(t, resp.IsOK())
	require.Len(t, resp.IDs, 2)
	assert.Equal(t, "X1", resp.IDs[0].ID)

	items := resp.IDsByType("orderIncomingItem")
	require.Len(t, items, 1)
	assert.Equal(t, "X2", items[0].ID)
	assert.Equal(t, 2, items[0].RecordID)
}

func TestClient_CreateOrderIncomingRejectsPriorityBeforeRequest(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusCreated, `{}`)

	order := wms.NewOrderIncoming("ORD-1", wms.OrderTypeExternal, "1", "PA1", "OU1")
	order.Priority = 1500
	resp, err := client.CreateOrderIncoming(context.Background(), order)

	assert.ErrorIs(t, err, wms.ErrPriorityOutOfRange)
	assert.Nil(t, resp)
	assert.Empty(t, recorded.method, "no request must be issued")
}

func TestClient_ParsesErrorBody(t *testing.T) {
	client, _ := newTestClient(t, http.StatusBadRequest,
		`{"errors":[{
			"errorText":"Invalid productId",
			"errorType":3,
			"propertyName":"productId",
			"recordId":"2",
			"recordType":"orderIncomingItem"
		}]}`)

	order := wms.NewOrderIncoming("ORD-1", wms.OrderTypeExternal, "1", "PA1", "OU1")
	resp, err := client.CreateOrderIncoming(context.Background(), order)

	require.NoError(t, err)
	assert.False(t, resp.IsOK())
	require.Len(t, resp.Errors, 1)

	remote := resp.Errors[0]
	assert.Equal(t, "Invalid productId", remote.Text)
	assert.Equal(t, wms.ErrorTypeInvalidValue, remote.Type)
	assert.Equal(t, "productId", remote.PropertyName)
	assert.Equal(t, "2", remote.RecordID)
	assert.Equal(t, "orderIncomingItem", remote.RecordType)
	assert.Equal(t, "Invalid value - e.g. id of nonexisting record", remote.ErrorCodeText())
}

func TestClient_ParsesNumericErrorFields(t *testing.T) {
	// Some services answer with recordId and errorType as plain numbers
	// rather than quoted numbers. A 200 carrying such errors is a partial
	// failure and the errors must survive parsing.
	client, _ := newTestClient(t, http.StatusOK,
		`{"data":{"ids":[{"id":"X1","recordId":1,"type":"orderIncoming"}]},
		  "errors":[{
			"errorText":"Invalid productId",
			"errorType":3,
			"propertyName":"productId",
			"recordId":2,
			"recordType":"orderIncomingItem"
		}]}`)

	order := wms.NewOrderIncoming("ORD-1", wms.OrderTypeExternal, "1", "PA1", "OU1")
	resp, err := client.CreateOrderIncoming(context.Background(), order)

	require.NoError(t, err)
	assert.True(t, resp.IsOK())
	require.Len(t, resp.IDs, 1)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, wms.ErrorTypeInvalidValue, resp.Errors[0].Type)
	assert.Equal(t, "2", resp.Errors[0].RecordID)
	assert.Equal(t, "orderIncomingItem", resp.Errors[0].RecordType)
}

func TestClient_UnreadableErrorElementKeepsRest(t *testing.T) {
	// One element the decoder cannot read must not erase the generated ids
	// or the other errors.
	client, _ := newTestClient(t, http.StatusOK,
		`{"data":{"ids":[{"id":"X1","recordId":1,"type":"orderIncoming"}]},
		  "errors":[
			{"errorText":"header fault","errorType":{},"recordId":{}},
			{"errorText":"Invalid productId","errorType":"3","recordId":"2","recordType":"orderIncomingItem"}
		]}`)

	order := wms.NewOrderIncoming("ORD-1", wms.OrderTypeExternal, "1", "PA1", "OU1")
	resp, err := client.CreateOrderIncoming(context.Background(), order)

	require.NoError(t, err)
	require.Len(t, resp.IDs, 1)
	assert.Equal(t, "X1", resp.IDs[0].ID)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "header fault", resp.Errors[0].Text)
	assert.Equal(t, 0, resp.Errors[0].Type)
	assert.Empty(t, resp.Errors[0].RecordID)
	assert.Equal(t, wms.ErrorTypeInvalidValue, resp.Errors[1].Type)
	assert.Equal(t, "2", resp.Errors[1].RecordID)
}

func TestClient_ErrorBodyWithoutRecordReference(t *testing.T) {
	client, _ := newTestClient(t, http.StatusBadRequest,
		`{"errors":[{"errorText":"Authentication failed","errorType":4}]}`)

	resp, err := client.CreatePartner(context.Background(),
		wms.NewPartner("C001", wms.PartnerTypeCustomer, "Acme s.r.o."))

	require.NoError(t, err)
	require.Len(t, resp.Errors, 1)
	assert.Empty(t, resp.Errors[0].RecordID)
	assert.Empty(t, resp.Errors[0].RecordType)
}

func TestClient_EmptyBodyIsRecovered(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, "")

	resp, err := client.CreateProduct(context.Background(),
		wms.NewProduct("SKU-1", "Widget", wms.ProductTypeGoods, "KS", "1"))

	require.NoError(t, err)
	assert.True(t, resp.IsOK())
	assert.Empty(t, resp.IDs)
	assert.Empty(t, resp.Errors)
}

func TestClient_MalformedBodyIsRecovered(t *testing.T) {
	client, _ := newTestClient(t, http.StatusInternalServerError, "<html>gateway error</html>")

	resp, err := client.CreateProduct(context.Background(),
		wms.NewProduct("SKU-1", "Widget", wms.ProductTypeGoods, "KS", "1"))

	require.NoError(t, err)
	assert.False(t, resp.IsOK())
	assert.Empty(t, resp.Errors)
}

func TestClient_TransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL + "/"
	srv.Close()

	client, err := NewClient(NewConfig("user", "secret", endpoint))
	require.NoError(t, err)

	resp, err := client.CreateProduct(context.Background(),
		wms.NewProduct("SKU-1", "Widget", wms.ProductTypeGoods, "KS", "1"))

	assert.ErrorIs(t, err, wms.ErrUnavailable)
	assert.Nil(t, resp)
}

func TestClient_OperatingUnitOperationsNotSupported(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{}`)
	unit := wms.NewOperatingUnit("OU-1", "PA1", 1, "Main branch")

	_, err := client.CreatePartnerOperatingUnit(context.Background(), unit)
	assert.ErrorIs(t, err, wms.ErrNotSupported)

	_, err = client.UpdatePartnerOperatingUnit(context.Background(), unit)
	assert.ErrorIs(t, err, wms.ErrNotSupported)

	assert.Empty(t, recorded.method, "no request must be issued")
}

func TestNewClient_InvalidConfig(t *testing.T) {
	client, err := NewClient(&Config{Username: "user"})

	assert.ErrorIs(t, err, ErrConfigMissingPassword)
	assert.Nil(t, client)
}
